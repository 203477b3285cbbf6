package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// Static error definitions for better error handling.
var (
	// ErrNoSearchTerms indicates a search without any query field.
	ErrNoSearchTerms = errors.New("at least one of query, lyrics, artist, title or album is required")
	// ErrNoLyrics indicates that a track has no lyrics of the requested kind.
	ErrNoLyrics = errors.New("no lyrics available")
)

// ExecuteSearchCommand searches tracks and prints them as a table.
func ExecuteSearchCommand(
	ctx context.Context,
	client musixmatch.Client,
	params *musixmatch.TrackSearchParameters,
	out io.Writer,
) error {
	if params.Query == "" && params.LyricsQuery == "" && params.Artist == "" && params.Title == "" && params.Album == "" {
		return ErrNoSearchTerms
	}

	tracks, err := client.SearchTracks(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to search tracks: %w", err)
	}

	if len(tracks) == 0 {
		logger.Info(ctx, "No tracks found")

		return nil
	}

	return writeText(out, renderTracks(tracks), fmt.Sprintf("%d track(s)", len(tracks)))
}

// ExecuteTrackCommand prints the details of a track.
func ExecuteTrackCommand(ctx context.Context, client musixmatch.Client, trackID int64, out io.Writer) error {
	track, err := client.GetTrack(ctx, trackID)
	if err != nil {
		return fmt.Errorf("failed to get track %d: %w", trackID, err)
	}

	return writeTrack(out, track)
}

// ExecuteSnippetCommand prints the snippet of a track.
func ExecuteSnippetCommand(ctx context.Context, client musixmatch.Client, trackID int64, out io.Writer) error {
	snippet, err := client.GetTrackSnippet(ctx, trackID)
	if err != nil {
		return fmt.Errorf("failed to get snippet of track %d: %w", trackID, err)
	}

	if snippet == "" {
		logger.Info(ctx, "Track is instrumental or has no snippet")

		return nil
	}

	return writeText(out, snippet, "")
}

// ExecuteLyricsCommand prints the plain lyrics of a track.
func ExecuteLyricsCommand(ctx context.Context, client musixmatch.Client, trackID int64, out io.Writer) error {
	lyrics, err := client.GetTrackLyrics(ctx, trackID)
	if err != nil {
		return fmt.Errorf("failed to get lyrics of track %d: %w", trackID, err)
	}

	if lyrics == nil || lyrics.Body == "" {
		return fmt.Errorf("%w: track %d", ErrNoLyrics, trackID)
	}

	return writeText(out, lyrics.Body, lyrics.Copyright)
}

// ExecuteSubtitleCommand prints synced lyrics of a track in the given format.
func ExecuteSubtitleCommand(
	ctx context.Context,
	client musixmatch.Client,
	trackID int64,
	format musixmatch.SubtitleFormat,
	out io.Writer,
) error {
	subtitle, err := client.GetSyncedLyrics(ctx, trackID, format)
	if err != nil {
		return fmt.Errorf("failed to get synced lyrics of track %d: %w", trackID, err)
	}

	if subtitle == nil || subtitle.Body == "" {
		return fmt.Errorf("%w: track %d has no synced lyrics", ErrNoLyrics, trackID)
	}

	return writeText(out, subtitle.Body, "")
}

// ExecuteSubmitCommand submits synced lyrics in the mxm format read from a file.
func ExecuteSubmitCommand(ctx context.Context, client musixmatch.Client, trackID int64, subtitlesPath string) error {
	content, err := os.ReadFile(filepath.Clean(subtitlesPath))
	if err != nil {
		return fmt.Errorf("failed to read subtitles: %w", err)
	}

	logger.Infof(ctx, "Submitting %s of synced lyrics for track %d",
		humanize.Bytes(uint64(len(content))), trackID)

	if err = client.SubmitSyncedLyrics(ctx, trackID, string(content)); err != nil {
		return fmt.Errorf("failed to submit synced lyrics: %w", err)
	}

	logger.Info(ctx, "Submission accepted. It may still be reviewed and withdrawn by the service.")

	return nil
}
