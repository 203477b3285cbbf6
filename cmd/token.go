package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/musixmatch-client/internal/app"
)

//nolint:gochecknoglobals // Cobra commands require a global definition.
var (
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "User token management commands",
	}

	tokenGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Request a new user token",
		Long: `Request a new anonymous user token from Musixmatch.

With --save the token is written to the configuration file, keeping the
rest of the file untouched. Tokens are rate limited: when the service asks
for a captcha, wait a few minutes and try again.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			isSaved, _ := cmd.Flags().GetBool("save")

			exitOnError(cmd, app.ExecuteTokenGetCommand(
				cmd.Context(), appConfig, newClient(cmd, false), isSaved, cmd.OutOrStdout()))
		},
	}

	tokenJWTCmd = &cobra.Command{
		Use:              "jwt",
		Short:            "Request a JWT for the current user token",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			exitOnError(cmd, app.ExecuteTokenJWTCommand(cmd.Context(), newClient(cmd, true), cmd.OutOrStdout()))
		},
	}

	missionsCmd = &cobra.Command{
		Use:   "missions {graphql_query}",
		Short: "Run a GraphQL query against the missions backend",
		Long: `Run a GraphQL query against the Musixmatch missions backend
and print the reply as is.

Example:
musixmatch-client missions '{ missions { id title } }'`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			exitOnError(cmd, app.ExecuteMissionsCommand(cmd.Context(), newClient(cmd, true), args[0], cmd.OutOrStdout()))
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	tokenGetCmd.Flags().Bool("save", false, "save the token to the configuration file.")

	tokenCmd.AddCommand(tokenGetCmd, tokenJWTCmd)
	rootCmd.AddCommand(tokenCmd, missionsCmd)
}
