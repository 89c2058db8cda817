package escape

import (
	"strings"
	"testing"
)

func TestEscapeTable(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"reset", "\x1b[0m"},
		{"bold", "\x1b[1m"},
		{"bright", "\x1b[1m"},
		{"blink", "\x1b[5m"},
		{"underline", "\x1b[4m"},
		{"underline-off", "\x1b[24m"},
		{"inverse", "\x1b[7m"},
		{"inverse-off", "\x1b[27m"},
		{"strike", "\x1b[9m"},
		{"strike-off", "\x1b[29m"},
		{"black", "\x1b[30m"},
		{"red", "\x1b[31m"},
		{"green", "\x1b[32m"},
		{"yellow", "\x1b[33m"},
		{"blue", "\x1b[34m"},
		{"magenta", "\x1b[35m"},
		{"cyan", "\x1b[36m"},
		{"white", "\x1b[37m"},
		{"default", "\x1b[39m"},
		{"bg-black", "\x1b[40m"},
		{"bg-red", "\x1b[41m"},
		{"bg-green", "\x1b[42m"},
		{"bg-yellow", "\x1b[43m"},
		{"bg-blue", "\x1b[44m"},
		{"bg-magenta", "\x1b[45m"},
		{"bg-cyan", "\x1b[46m"},
		{"bg-white", "\x1b[47m"},
		{"bg-default", "\x1b[49m"},
	}

	SetEnabled(true)
	for _, tt := range tests {
		if got := Escape(tt.name); got != tt.expected {
			t.Errorf("Escape(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestEscapeUnknownFallsBackToReset(t *testing.T) {
	SetEnabled(true)
	if got := Escape("no-such-directive"); got != "\x1b[0m" {
		t.Errorf("expected reset for unknown directive, got %q", got)
	}
}

func TestEscapeDisabled(t *testing.T) {
	With(false, func() {
		for _, name := range []string{"reset", "red", "bold", "no-such-directive"} {
			if got := Escape(name); got != "" {
				t.Errorf("Escape(%q) with styling disabled = %q, want empty", name, got)
			}
		}
	})
}

func TestWithNests(t *testing.T) {
	SetEnabled(true)
	With(false, func() {
		if Enabled() {
			t.Fatal("expected styling disabled in outer scope")
		}
		With(true, func() {
			if !Enabled() {
				t.Fatal("expected inner scope to re-enable styling")
			}
		})
		if Enabled() {
			t.Fatal("expected outer scope restored after inner exits")
		}
	})
	if !Enabled() {
		t.Fatal("expected styling enabled after all scopes exit")
	}
}

func TestWithRestoresOnPanic(t *testing.T) {
	SetEnabled(true)
	func() {
		defer func() { _ = recover() }()
		With(false, func() {
			panic("abnormal exit")
		})
	}()
	if !Enabled() {
		t.Fatal("expected styling restored after panic inside scope")
	}
}

func TestDefine(t *testing.T) {
	SetEnabled(true)
	Define("overline", "[53m")
	if got := Escape("overline"); got != "\x1b[53m" {
		t.Errorf("Escape(overline) = %q, want %q", got, "\x1b[53m")
	}

	names := Names()
	found := false
	for _, name := range names {
		if name == "overline" {
			found = true
		}
	}
	if !found {
		t.Error("expected Names to include defined directive")
	}
	if !sortedStrings(names) {
		t.Error("expected Names to be sorted")
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if strings.Compare(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
