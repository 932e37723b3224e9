package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/cjtool/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DownloadDir",
			got:      domain.DownloadDir(filepath.Join("home", "user")),
			expected: filepath.Join("home", "user", ".zed", "extensions"),
		},
		{
			name:     "SDKBinDir",
			got:      domain.SDKBinDir(filepath.Join("opt", "cangjie")),
			expected: filepath.Join("opt", "cangjie", "bin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
