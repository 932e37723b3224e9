package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cjtool/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the SDK root and compiler locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			info, err := c.app.Info(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			writeLocation(out, info.SDK)
			for _, tool := range info.Tools {
				writeLocation(out, tool)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the report as JSON")

	return cmd
}

func writeLocation(w io.Writer, loc app.Location) {
	value := loc.Path
	if loc.Error != "" {
		value = "error: " + loc.Error
	}
	_, _ = fmt.Fprintf(w, "%-14s%s\n", loc.Name, value)
}
