// Package app implements the application layer for cjtool.
package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/cjtool/internal/adapters/detector"
	"go.trai.ch/cjtool/internal/core/domain"
	"go.trai.ch/cjtool/internal/core/ports"
	"go.trai.ch/zerr"
)

// App exposes the tool resolution and provisioning engine.
// Every operation loads the project settings first.
type App struct {
	settings  ports.SettingsLoader
	sdk       ports.SDKRootResolver
	tools     ports.ToolResolver
	installer ports.Installer
	updates   ports.UpdateChecker
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	sdk ports.SDKRootResolver,
	tools ports.ToolResolver,
	installer ports.Installer,
	updates ports.UpdateChecker,
	log ports.Logger,
) *App {
	return &App{
		settings:  settings,
		sdk:       sdk,
		tools:     tools,
		installer: installer,
		updates:   updates,
		logger:    log,
	}
}

// Options selects the project whose settings apply to an operation.
type Options struct {
	// Dir is the directory settings discovery starts from. Empty means the working directory.
	Dir string
	// ConfigFile is an explicit settings file that disables discovery.
	ConfigFile string
}

// LogOptions configures the logger output.
type LogOptions struct {
	Verbose bool
	// Format is one of "auto", "pretty" or "json".
	Format string
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies verbosity and output format to the logger.
func (a *App) ConfigureLogging(opts LogOptions) {
	l, ok := a.logger.(configurableLogger)
	if !ok {
		return
	}
	format := detector.ResolveFormat(detector.DetectEnvironment(), opts.Format)
	l.SetJSON(format == detector.FormatJSON)
	l.SetVerbose(opts.Verbose)
}

// LoadSettings returns the settings that apply to opts.
func (a *App) LoadSettings(opts Options) (domain.Settings, error) {
	if opts.ConfigFile != "" {
		return a.settings.LoadFile(opts.ConfigFile)
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}
	return a.settings.Load(filepath.Clean(dir))
}

// ResolveSDKRoot returns the SDK root directory.
func (a *App) ResolveSDKRoot(ctx context.Context, opts Options) (string, error) {
	settings, err := a.LoadSettings(opts)
	if err != nil {
		return "", err
	}
	return a.sdk.Resolve(ctx, settings)
}

// ResolveTool returns the path of the named tool without downloading it.
func (a *App) ResolveTool(ctx context.Context, opts Options, name string) (string, error) {
	tool, err := domain.LookupTool(name)
	if err != nil {
		return "", err
	}
	settings, err := a.LoadSettings(opts)
	if err != nil {
		return "", err
	}
	return a.tools.Resolve(ctx, settings, tool)
}

// EnsureInstalled returns the path of the named tool, downloading it if needed.
func (a *App) EnsureInstalled(ctx context.Context, opts Options, name string) (string, error) {
	tool, err := domain.LookupTool(name)
	if err != nil {
		return "", err
	}
	settings, err := a.LoadSettings(opts)
	if err != nil {
		return "", err
	}
	return a.installer.EnsureInstalled(ctx, settings, tool)
}

// CheckUpdates compares installedVersion with the latest release, at most once per hour.
func (a *App) CheckUpdates(ctx context.Context, installedVersion string) (*domain.UpdateReport, error) {
	return a.updates.Check(ctx, installedVersion)
}

// LanguageServerCommand returns how the language server is launched.
// Configured arguments replace the defaults entirely.
func (a *App) LanguageServerCommand(ctx context.Context, opts Options) (domain.LaunchCommand, error) {
	settings, err := a.LoadSettings(opts)
	if err != nil {
		return domain.LaunchCommand{}, err
	}

	path, err := a.installer.EnsureInstalled(ctx, settings, domain.LanguageServer)
	if err != nil {
		return domain.LaunchCommand{}, err
	}

	args := domain.DefaultLanguageServerArgs()
	if configured := settings.Tool(domain.LanguageServer.Name).Arguments; configured != nil {
		args = slices.Clone(configured)
	}
	return domain.LaunchCommand{Path: path, Args: args}, nil
}

// Location is the outcome of resolving one path.
type Location struct {
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// Info summarizes the toolchain visible from a project.
type Info struct {
	SDK   Location   `json:"sdk"`
	Tools []Location `json:"tools"`
}

// Info resolves the SDK root and the compiler binaries concurrently.
// Resolution failures are reported per entry instead of failing the call.
func (a *App) Info(ctx context.Context, opts Options) (*Info, error) {
	settings, err := a.LoadSettings(opts)
	if err != nil {
		return nil, err
	}

	tools := []domain.Tool{domain.Compiler, domain.CompilerFrontend}
	info := &Info{
		SDK:   Location{Name: "sdk"},
		Tools: make([]Location, len(tools)),
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		root, err := a.sdk.Resolve(ctx, settings)
		info.SDK = locate("sdk", root, err)
	})
	for i, tool := range tools {
		wg.Go(func() {
			path, err := a.tools.Resolve(ctx, settings, tool)
			info.Tools[i] = locate(tool.Name, path, err)
		})
	}
	wg.Wait()

	return info, nil
}

func locate(name, path string, err error) Location {
	if err != nil {
		return Location{Name: name, Error: err.Error()}
	}
	return Location{Name: name, Path: path}
}

// WorkspaceConfiguration returns the settings document forwarded to the language server.
func (a *App) WorkspaceConfiguration(opts Options) (domain.Settings, error) {
	return a.LoadSettings(opts)
}
