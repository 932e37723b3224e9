package ports

import "go.trai.ch/cjtool/internal/core/domain"

// SettingsLoader defines the interface for loading host settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load discovers and reads the settings for the given working directory.
	// A missing settings file yields empty settings rooted at cwd.
	Load(cwd string) (domain.Settings, error)

	// LoadFile reads the settings file at path, which must exist.
	LoadFile(path string) (domain.Settings, error)
}
