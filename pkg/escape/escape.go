// Package escape maps symbolic directive names to ANSI SGR escape
// sequences and owns the process-wide styling switch.
package escape

import (
	"sort"
	"sync"
)

// Introducer is the control byte that begins every emitted escape sequence.
const Introducer = "\x1b"

// table holds the SGR parameter fragment for each directive name. The
// introducer byte is prepended at emission time, never stored.
var table = map[string]string{
	"reset": "[0m",

	"bold":          "[1m",
	"bright":        "[1m",
	"blink":         "[5m",
	"underline":     "[4m",
	"underline-off": "[24m",
	"inverse":       "[7m",
	"inverse-off":   "[27m",
	"strike":        "[9m",
	"strike-off":    "[29m",

	"black":   "[30m",
	"red":     "[31m",
	"green":   "[32m",
	"yellow":  "[33m",
	"blue":    "[34m",
	"magenta": "[35m",
	"cyan":    "[36m",
	"white":   "[37m",
	"default": "[39m",

	"bg-black":   "[40m",
	"bg-red":     "[41m",
	"bg-green":   "[42m",
	"bg-yellow":  "[43m",
	"bg-blue":    "[44m",
	"bg-magenta": "[45m",
	"bg-cyan":    "[46m",
	"bg-white":   "[47m",
	"bg-default": "[49m",
}

var (
	mu      sync.RWMutex
	enabled = true
)

// Escape resolves a directive name to a full escape sequence. When
// styling is disabled it returns "" without touching the table, so a
// disabled process pays nothing for lookups. An unknown name resolves
// to the reset directive rather than failing: output formatting must
// never crash the host program.
func Escape(name string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return ""
	}
	fragment, ok := table[name]
	if !ok {
		fragment = table["reset"]
	}
	return Introducer + fragment
}

// Define adds or replaces a directive. Applications that need escapes
// beyond the built-in SGR set should call this before composing.
func Define(name, fragment string) {
	mu.Lock()
	defer mu.Unlock()
	table[name] = fragment
}

// Names returns all directive names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled reports whether Escape currently emits real sequences.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled flips the styling switch for the whole process.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// With runs fn with the styling switch forced to v, restoring the
// previous value when fn returns or panics. Calls nest: an inner With
// may re-enable styling inside an outer disabled scope. Scopes opened
// from different goroutines must not overlap, since they share the
// one process-wide switch.
func With(v bool, fn func()) {
	mu.Lock()
	prev := enabled
	enabled = v
	mu.Unlock()
	defer SetEnabled(prev)
	fn()
}
