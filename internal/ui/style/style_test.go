package style_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/ui/style"
)

func TestForLevel(t *testing.T) {
	tests := []struct {
		level    slog.Level
		wantIcon string
	}{
		{level: slog.LevelDebug, wantIcon: style.Circle},
		{level: slog.LevelInfo, wantIcon: ""},
		{level: slog.LevelWarn, wantIcon: style.Warning},
		{level: slog.LevelError, wantIcon: style.Cross},
		{level: slog.LevelError + 4, wantIcon: style.Cross},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			icon, _ := style.ForLevel(tt.level)
			assert.Equal(t, tt.wantIcon, icon)
		})
	}
}

func TestForStatus(t *testing.T) {
	icon, color := style.ForStatus(domain.StatusInstalled)
	assert.Equal(t, style.Check, icon)
	assert.Equal(t, style.Green, color)

	icon, _ = style.ForStatus(domain.StatusDownloading)
	assert.Equal(t, style.Dot, icon)

	icon, color = style.ForStatus(domain.StatusFailed)
	assert.Equal(t, style.Cross, icon)
	assert.Equal(t, style.Red, color)
}
