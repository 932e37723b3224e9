// Package commands implements the CLI commands for cjtool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cjtool/internal/app"
	"go.trai.ch/cjtool/internal/build"
	"go.trai.ch/cjtool/internal/core/domain"
)

// CLI represents the command line interface for cjtool.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir        string
	configFile string
	verbose    bool
	logFormat  string
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions)
	ResolveSDKRoot(ctx context.Context, opts app.Options) (string, error)
	ResolveTool(ctx context.Context, opts app.Options, name string) (string, error)
	EnsureInstalled(ctx context.Context, opts app.Options, name string) (string, error)
	LanguageServerCommand(ctx context.Context, opts app.Options) (domain.LaunchCommand, error)
	Info(ctx context.Context, opts app.Options) (*app.Info, error)
	CheckUpdates(ctx context.Context, installedVersion string) (*domain.UpdateReport, error)
	WorkspaceConfiguration(opts app.Options) (domain.Settings, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cjtool",
		Short:         "Locate and provision the Cangjie toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.dir, "dir", "C", "", "Project directory to discover "+domain.ConfigFileName+" from")
	flags.StringVarP(&c.configFile, "config", "c", "", "Path to a settings file, disables discovery")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.logFormat, "log-format", "auto", "Log format: auto, pretty or json")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(app.LogOptions{Verbose: c.verbose, Format: c.logFormat})
	}

	rootCmd.AddCommand(c.newSDKCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newLSPCommandCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newCheckUpdatesCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options() app.Options {
	return app.Options{Dir: c.dir, ConfigFile: c.configFile}
}

func toolNames() []string {
	known := domain.KnownTools()
	names := make([]string, 0, len(known))
	for _, t := range known {
		names = append(names, t.Name)
	}
	return names
}
