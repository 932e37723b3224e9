// Package output creates terminal writers that honor NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Profile returns the color profile for the environment read through getenv.
// NO_COLOR forces plain text.
func Profile(getenv func(string) string) termenv.Profile {
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output on w, defaulting to stderr.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(os.Getenv)),
		termenv.WithTTY(true),
	)
}

// Paint renders s in color for out's profile.
func Paint(out *termenv.Output, s string, color lipgloss.Color) string {
	return out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}
