package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cjtool/internal/core/domain"
)

func (c *CLI) newSDKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sdk",
		Short: "Print the Cangjie SDK root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.app.ResolveSDKRoot(cmd.Context(), c.options())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "resolve <tool>",
		Short:     "Print the path of a toolchain binary",
		Long:      "Print the path of a toolchain binary. Known tools: " + strings.Join(toolNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: toolNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.ResolveTool(cmd.Context(), c.options(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "install [tool]",
		Short:     "Ensure a toolchain binary is available, downloading it if needed",
		Long:      "Ensure a toolchain binary is available. Defaults to " + domain.LanguageServer.Name + ".",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: toolNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.LanguageServer.Name
			if len(args) == 1 {
				name = args[0]
			}
			path, err := c.app.EnsureInstalled(cmd.Context(), c.options(), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
