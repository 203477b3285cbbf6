package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/musixmatch-client/internal/app"
	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

//nolint:gochecknoglobals // Cobra commands require a global definition.
var (
	trackCmd = &cobra.Command{
		Use:              "track {track_id}",
		Short:            "Show track details",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			trackID := parseTrackID(cmd, args[0])
			exitOnError(cmd, app.ExecuteTrackCommand(cmd.Context(), newClient(cmd, true), trackID, cmd.OutOrStdout()))
		},
	}

	snippetCmd = &cobra.Command{
		Use:              "snippet {track_id}",
		Short:            "Print the lyrics snippet of a track",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			trackID := parseTrackID(cmd, args[0])
			exitOnError(cmd, app.ExecuteSnippetCommand(cmd.Context(), newClient(cmd, true), trackID, cmd.OutOrStdout()))
		},
	}

	lyricsCmd = &cobra.Command{
		Use:              "lyrics {track_id}",
		Short:            "Print the plain lyrics of a track",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			trackID := parseTrackID(cmd, args[0])
			exitOnError(cmd, app.ExecuteLyricsCommand(cmd.Context(), newClient(cmd, true), trackID, cmd.OutOrStdout()))
		},
	}

	subtitleCmd = &cobra.Command{
		Use:   "subtitle {track_id}",
		Short: "Print the synced lyrics of a track",
		Long: `Print the synced lyrics of a track.

Formats:
  lrc     [mm:ss.xx] lines, understood by most players
  dfxp    XML timed text
  stledu  EBU subtitles
  mxm     Musixmatch JSON, the format accepted by 'submit'`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			trackID := parseTrackID(cmd, args[0])
			format := musixmatch.SubtitleFormat(appConfig.SubtitleFormat)

			exitOnError(cmd, app.ExecuteSubtitleCommand(
				cmd.Context(), newClient(cmd, true), trackID, format, cmd.OutOrStdout()))
		},
	}

	submitCmd = &cobra.Command{
		Use:   "submit {track_id} {file}",
		Short: "Submit synced lyrics",
		Long: `Submit synced lyrics for a track.

The file must contain subtitles in the Musixmatch JSON format
(see 'subtitle --format mxm').`,
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			trackID := parseTrackID(cmd, args[0])
			exitOnError(cmd, app.ExecuteSubmitCommand(cmd.Context(), newClient(cmd, true), trackID, args[1]))
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	subtitleCmd.Flags().StringP(
		"format",
		"f",
		"",
		fmt.Sprintf("subtitle format: lrc, dfxp, stledu, mxm (default from config, '%s' if unset).",
			musixmatch.SubtitleFormatLRC))

	rootCmd.AddCommand(trackCmd, snippetCmd, lyricsCmd, subtitleCmd, submitCmd)
}

func parseTrackID(cmd *cobra.Command, value string) int64 {
	trackID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || trackID <= 0 {
		logger.Fatalf(cmd.Context(), "Invalid track ID: '%s'", value)
	}

	return trackID
}
