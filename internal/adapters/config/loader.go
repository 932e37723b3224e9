// Package config provides the settings loader for cjtool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// NewLoaderWithFS creates a Loader reading from the given filesystem.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load discovers the configuration file by walking up from cwd and reads it.
// When no file is found, empty settings rooted at cwd are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Settings{}, zerr.With(domain.WrapKind(domain.ErrConfigReadFailed, err), "cwd", cwd)
	}

	configPath, found := l.findConfiguration(absCwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found above %s, using defaults", domain.ConfigFileName, absCwd))
		return domain.Settings{BaseDir: absCwd}, nil
	}

	return l.LoadFile(configPath)
}

// LoadFile reads the configuration file at path. The file must exist.
func (l *Loader) LoadFile(path string) (domain.Settings, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return domain.Settings{}, zerr.With(domain.WrapKind(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file File
	if err := l.readAndUnmarshalYAML(absPath, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", absPath)
	}

	l.Logger.Debug("loaded settings from " + absPath)

	baseDir := filepath.Dir(absPath)
	settings := domain.Settings{
		SDKPath: resolveRelative(baseDir, file.SDKPath),
		BaseDir: baseDir,
		Source:  absPath,
	}

	if len(file.Tools) > 0 {
		settings.Tools = make(map[string]domain.ToolSettings, len(file.Tools))
	}
	for _, name := range sortedKeys(file.Tools) {
		if _, err := domain.LookupTool(name); err != nil {
			l.Logger.Warn(fmt.Sprintf("unknown tool %q in %s has no effect", name, absPath))
		}
		dto := file.Tools[name]
		settings.Tools[name] = domain.ToolSettings{
			PathOverride: dto.PathOverride,
			Arguments:    dto.Arguments,
		}
	}

	return settings, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		for _, name := range []string{domain.ConfigFileName, domain.AltConfigFileName} {
			candidate := filepath.Join(currentDir, name)
			if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.WrapKind(domain.ErrConfigReadFailed, zerr.Wrap(err, "file does not exist"))
		}
		return domain.WrapKind(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return domain.WrapKind(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}

// resolveRelative joins a relative path onto baseDir. Empty and absolute paths are returned as-is.
func resolveRelative(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

func sortedKeys(m map[string]ToolDTO) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
