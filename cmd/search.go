package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/musixmatch-client/internal/app"
	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// ErrUnknownSortOrder indicates an unsupported --sort value.
var ErrUnknownSortOrder = errors.New("unknown sort order")

const defaultSearchLimit = 10

//nolint:gochecknoglobals // Cobra command requires a global definition.
var searchCmd = &cobra.Command{
	Use:   "search [flags] [query]",
	Short: "Search tracks",
	Long: `Search the Musixmatch track database.

The positional argument matches any word in the title, artist name or lyrics.
Use --artist, --title and --album for targeted matches.

Example:
musixmatch-client search --artist "Daft Punk" --title "One More Time" --has-lyrics`,
	Args:             cobra.MaximumNArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		params, err := searchParametersFromFlags(cmd.Flags(), args)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		exitOnError(cmd, app.ExecuteSearchCommand(cmd.Context(), newClient(cmd, true), params, cmd.OutOrStdout()))
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	registerSearchFlags(searchCmd.Flags())
	rootCmd.AddCommand(searchCmd)
}

func registerSearchFlags(flags *pflag.FlagSet) {
	flags.StringP("artist", "a", "", "match the artist name.")
	flags.StringP("title", "t", "", "match the track title.")
	flags.String("album", "", "match the album title.")
	flags.String("lyrics", "", "match words in the lyrics.")
	flags.Bool("has-lyrics", false, "only tracks with lyrics.")
	flags.Bool("has-subtitles", false, "only tracks with synced lyrics.")
	flags.StringP("sort", "s", "", "sort order: track-asc, track-desc, artist-asc, artist-desc.")
	flags.Int("page", 0, "page number, starting at 1.")
	flags.IntP("limit", "n", defaultSearchLimit, "results per page (1-100).")
	flags.String("language", "", "only lyrics in this ISO 639-1 language.")
}

func searchParametersFromFlags(flags *pflag.FlagSet, args []string) (*musixmatch.TrackSearchParameters, error) {
	params := new(musixmatch.TrackSearchParameters)

	if len(args) > 0 {
		params.Query = args[0]
	}

	params.Artist, _ = flags.GetString("artist")
	params.Title, _ = flags.GetString("title")
	params.Album, _ = flags.GetString("album")
	params.LyricsQuery, _ = flags.GetString("lyrics")
	params.HasLyrics, _ = flags.GetBool("has-lyrics")
	params.HasSubtitles, _ = flags.GetBool("has-subtitles")
	params.Page, _ = flags.GetInt("page")
	params.PageSize, _ = flags.GetInt("limit")
	params.Language, _ = flags.GetString("language")

	sortName, _ := flags.GetString("sort")

	sort, ok := musixmatch.ParseSortStrategy(sortName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortOrder, sortName)
	}

	params.Sort = sort

	return params, nil
}
