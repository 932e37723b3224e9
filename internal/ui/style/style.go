// Package style provides the colors and icons shared by log and status output.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cjtool/internal/core/domain"
)

// Palette.
var (
	Accent = lipgloss.Color("#E4572E")
	Slate  = lipgloss.Color("#667085")
	Mist   = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// ForLevel returns the icon and color for a log level. Info has no icon.
func ForLevel(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return Cross, Red
	case level >= slog.LevelWarn:
		return Warning, Yellow
	case level >= slog.LevelInfo:
		return "", Slate
	default:
		return Circle, Mist
	}
}

// ForStatus returns the icon and color for an installation status.
func ForStatus(status domain.InstallStatus) (string, lipgloss.Color) {
	switch status {
	case domain.StatusCheckingForUpdate:
		return Tilde, Slate
	case domain.StatusDownloading:
		return Dot, Accent
	case domain.StatusInstalled:
		return Check, Green
	case domain.StatusFailed:
		return Cross, Red
	case domain.StatusNone:
		return Circle, Mist
	default:
		return Circle, Mist
	}
}
