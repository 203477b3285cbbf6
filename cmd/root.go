package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/musixmatch-client/internal/app"
	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "musixmatch-client",
		Short: "Search Musixmatch and fetch lyrics from the command line.",
		Long: `Musixmatch Client talks to the Musixmatch desktop API.
It can:
- Search tracks and show their details
- Print plain lyrics, synced lyrics and snippets
- Save lyrics for local MP3 and FLAC files and embed them into tags
- Submit synced lyrics
- Obtain a user token and store it in the configuration file`,
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootFlags := rootCmd.PersistentFlags()

	rootFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")

	rootFlags.String(
		"token",
		"",
		"Musixmatch user token (overrides auth_token from the configuration file).")
}

// initConfig loads the configuration, applies flag overrides and validates the result.
func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// bindFlagsToConfig copies every changed flag into cfg and validates it.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("token"); flag != nil && flag.Changed {
		cfg.AuthToken, _ = flags.GetString("token")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("replace"); flag != nil && flag.Changed {
		cfg.ReplaceLyrics, _ = flags.GetBool("replace")
	}

	if flag := flags.Lookup("embed"); flag != nil && flag.Changed {
		cfg.EmbedLyrics, _ = flags.GetBool("embed")
	}

	if flag := flags.Lookup("dry-run"); flag != nil && flag.Changed {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}

	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.SubtitleFormat, _ = flags.GetString("format")
	}

	return config.ValidateConfig(cfg)
}

// newClient builds the API client or exits.
func newClient(cmd *cobra.Command, isTokenRequired bool) musixmatch.Client {
	client, err := app.NewClient(appConfig, isTokenRequired)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to initialize Musixmatch client: %v", err)
	}

	return client
}

// exitOnError logs err and exits with a non-zero status.
func exitOnError(cmd *cobra.Command, err error) {
	if err != nil {
		logger.Fatalf(cmd.Context(), "%v", err)
	}
}
