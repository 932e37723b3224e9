package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckUpdatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-updates",
		Short: "Check the release feed for a newer toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installed, _ := cmd.Flags().GetString("installed")

			report, err := c.app.CheckUpdates(cmd.Context(), installed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !report.Checked {
				_, _ = fmt.Fprintln(out, "update check skipped, last check was less than an hour ago")
				return nil
			}

			_, _ = fmt.Fprintf(out, "latest release: %s\n", report.LatestTag)
			switch {
			case installed == "":
			case report.UpdateAvailable:
				_, _ = fmt.Fprintf(out, "update available: %s -> %s\n", installed, report.LatestTag)
			default:
				_, _ = fmt.Fprintf(out, "%s is up to date\n", installed)
			}
			return nil
		},
	}

	cmd.Flags().String("installed", "", "Installed toolchain version to compare against")

	return cmd
}
