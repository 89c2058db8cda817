// Package term decides whether an output stream should receive styled
// text. It only picks a default for the styling switch; it is not a
// capability database.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// StylingSupported reports whether out can usefully display escape
// sequences. It honors NO_COLOR, requires a real terminal, and checks
// the terminal's color profile via termenv.
func StylingSupported(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
