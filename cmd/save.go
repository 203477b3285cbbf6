package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/musixmatch-client/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var saveCmd = &cobra.Command{
	Use:   "save [flags] {files}",
	Short: "Save lyrics for local MP3 and FLAC files",
	Long: `Read artist and title from each file's tags, look the track up and save its lyrics.

Synced lyrics are saved as <name>.lrc, plain lyrics as <name>.txt,
next to the audio file or in --output when given.

Example:
musixmatch-client save --embed ~/Music/*.flac`,
	Args:             cobra.MinimumNArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, paths []string) {
		app.ExecuteSaveCommand(cmd.Context(), appConfig, newClient(cmd, true), paths)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := saveCmd.Flags()

	flags.StringP(
		"output",
		"o",
		"",
		"directory to save lyrics files (the path will be created if it doesn’t exist).")

	flags.BoolP(
		"replace",
		"r",
		false,
		"overwrite existing lyrics files.")

	flags.BoolP(
		"embed",
		"e",
		false,
		"also write the lyrics into the audio file tags.")

	flags.Bool(
		"dry-run",
		false,
		"preview what would be saved without writing any files.")

	rootCmd.AddCommand(saveCmd)
}
