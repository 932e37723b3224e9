package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newLSPCommandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp-command",
		Short: "Print how to launch the language server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			launch, err := c.app.LanguageServerCommand(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(launch)
			}

			_, _ = fmt.Fprintln(out, strings.Join(append([]string{launch.Path}, launch.Args...), " "))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the command as JSON")

	return cmd
}
