package markup

import "sync"

// styles maps a style name to the directives it stands for. Callers
// use style names and raw directive names interchangeably in markup;
// Resolve falls through to the directive layer for anything not
// defined here.
var (
	stylesMu sync.RWMutex
	styles   = map[string][]string{}
)

// SetStyle defines or replaces a style alias. A style with no
// directives is removed.
func SetStyle(name string, directives ...string) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if len(directives) == 0 {
		delete(styles, name)
		return
	}
	styles[name] = append([]string(nil), directives...)
}

// Styles returns a copy of the current style table.
func Styles() map[string][]string {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	out := make(map[string][]string, len(styles))
	for name, directives := range styles {
		out[name] = append([]string(nil), directives...)
	}
	return out
}

// Resolve expands a name through the style table. Names without a
// style entry resolve to themselves, so raw directive names work
// anywhere a style name does.
func Resolve(name string) []string {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	if directives, ok := styles[name]; ok {
		return directives
	}
	return []string{name}
}

// WithStyles runs fn with the given styles layered over the current
// table, restoring the previous table when fn returns or panics.
// Overrides replace entries with the same name and add the rest; the
// same nesting caveats as escape.With apply.
func WithStyles(overrides map[string][]string, fn func()) {
	stylesMu.Lock()
	prev := styles
	next := make(map[string][]string, len(prev)+len(overrides))
	for name, directives := range prev {
		next[name] = directives
	}
	for name, directives := range overrides {
		next[name] = append([]string(nil), directives...)
	}
	styles = next
	stylesMu.Unlock()
	defer func() {
		stylesMu.Lock()
		styles = prev
		stylesMu.Unlock()
	}()
	fn()
}
