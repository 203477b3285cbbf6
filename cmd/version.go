package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/musixmatch-client/internal/version"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.Version = version.Short()
	rootCmd.AddCommand(versionCmd)
}
