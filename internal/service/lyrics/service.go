package lyrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/constants"
	"github.com/oshokin/musixmatch-client/internal/logger"
	"github.com/oshokin/musixmatch-client/internal/utils"
)

// Service fetches lyrics for local audio files.
type Service interface {
	// SaveLyrics processes every path sequentially.
	SaveLyrics(ctx context.Context, paths []string)
	// PrintSummary prints a formatted summary of the last run.
	PrintSummary(ctx context.Context)
	// Statistics returns a copy of the current counters.
	Statistics() Statistics
}

// ServiceImpl implements Service over the Musixmatch client.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the Musixmatch API client.
	client musixmatch.Client
	// tagReader reads artist and title from audio files.
	tagReader TagReader
	// tagProcessor embeds lyrics into audio files.
	tagProcessor TagProcessor
	// stats tracks the results of the current run.
	stats *Statistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

	// File options for creating a new file (fails if the file already exists).
	createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY
)

// NewService creates a lyrics service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	client musixmatch.Client,
	tagReader TagReader,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:          cfg,
		client:       client,
		tagReader:    tagReader,
		tagProcessor: tagProcessor,
		stats:        newStatistics(),
		statsMutex:   new(sync.Mutex),
	}
}

// SaveLyrics processes every path sequentially.
func (s *ServiceImpl) SaveLyrics(ctx context.Context, paths []string) {
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.stats.IsDryRun = s.cfg.DryRun
	s.statsMutex.Unlock()

	if s.cfg.OutputPath != "" {
		if s.cfg.DryRun {
			logger.Infof(ctx, "[DRY-RUN] Would create output directory: %s", s.cfg.OutputPath)
		} else if err := os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
			logger.Errorf(ctx, "Failed to create output path: %v", err)

			return
		}
	}

	var bar *progressbar.ProgressBar
	if logger.Level() <= zap.InfoLevel && len(paths) > 1 {
		bar = progressbar.Default(int64(len(paths)), "Fetching lyrics")
	}

	for _, trackPath := range paths {
		if ctx.Err() != nil {
			logger.Warn(ctx, "Lyrics processing interrupted")

			break
		}

		s.processFile(logger.WithKV(ctx, "file", filepath.Base(trackPath)), trackPath)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()
}

// Statistics returns a copy of the current counters.
func (s *ServiceImpl) Statistics() Statistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	result := *s.stats
	result.Skipped = make(map[SkipReason]int64, len(s.stats.Skipped))

	for reason, count := range s.stats.Skipped {
		result.Skipped[reason] = count
	}

	result.Errors = append([]FileError(nil), s.stats.Errors...)

	return result
}

func (s *ServiceImpl) processFile(ctx context.Context, trackPath string) {
	if !isSupportedAudioFile(trackPath) {
		logger.Infof(ctx, "Skipping unsupported file: %s", trackPath)
		s.incrementSkipped(SkipReasonUnsupported)

		return
	}

	tags, err := s.tagReader.ReadTags(ctx, trackPath)
	if err != nil {
		s.recordFailure(ctx, trackPath, PhaseReadTags, err)

		return
	}

	if tags.Artist == "" || tags.Title == "" {
		logger.Warnf(ctx, "Artist or title tag is missing in %s", trackPath)
		s.incrementSkipped(SkipReasonNoTags)

		return
	}

	track, err := s.findTrack(ctx, tags)
	if err != nil {
		s.recordFailure(ctx, trackPath, PhaseSearch, err)

		return
	}

	if track == nil {
		logger.Infof(ctx, "No lyrics found for %s - %s", tags.Artist, tags.Title)
		s.incrementSkipped(SkipReasonNotFound)

		return
	}

	if track.IsInstrumental() {
		logger.Infof(ctx, "Track is instrumental: %s - %s", track.ArtistName, track.Name)
		s.incrementSkipped(SkipReasonInstrumental)

		return
	}

	lyrics, err := s.fetchLyrics(ctx, track)
	if err != nil {
		s.recordFailure(ctx, trackPath, PhaseFetch, err)

		return
	}

	if lyrics == nil {
		logger.Infof(ctx, "Lyrics are empty for %s - %s", track.ArtistName, track.Name)
		s.incrementSkipped(SkipReasonNotFound)

		return
	}

	s.saveLyrics(ctx, trackPath, lyrics)
}

// findTrack returns the best match with lyrics, or nil when there is none.
func (s *ServiceImpl) findTrack(ctx context.Context, tags *TrackTags) (*musixmatch.Track, error) {
	tracks, err := s.client.SearchTracks(ctx, &musixmatch.TrackSearchParameters{
		Artist:    tags.Artist,
		Title:     tags.Title,
		Album:     tags.Album,
		HasLyrics: true,
		Sort:      musixmatch.SortTrackRatingDesc,
		PageSize:  1,
	})
	if err != nil {
		return nil, err
	}

	// Retry without the album when the full match finds nothing.
	if len(tracks) == 0 && tags.Album != "" {
		tracks, err = s.client.SearchTracks(ctx, &musixmatch.TrackSearchParameters{
			Artist:    tags.Artist,
			Title:     tags.Title,
			HasLyrics: true,
			Sort:      musixmatch.SortTrackRatingDesc,
			PageSize:  1,
		})
		if err != nil {
			return nil, err
		}
	}

	if len(tracks) == 0 {
		return nil, nil //nolint:nilnil // No match is not an error.
	}

	return tracks[0], nil
}

// fetchLyrics prefers LRC subtitles and falls back to plain lyrics.
func (s *ServiceImpl) fetchLyrics(ctx context.Context, track *musixmatch.Track) (*fetchedLyrics, error) {
	if track.HasSyncedLyrics() {
		subtitle, err := s.client.GetSyncedLyrics(ctx, track.ID, musixmatch.SubtitleFormatLRC)

		switch {
		case err == nil && subtitle != nil && strings.TrimSpace(subtitle.Body) != "":
			return &fetchedLyrics{text: subtitle.Body, isSynced: true}, nil
		case err != nil && !errors.Is(err, musixmatch.ErrResourceNotFound):
			logger.Warnf(ctx, "Failed to get synced lyrics, falling back to plain lyrics: %v", err)
		}
	}

	lyrics, err := s.client.GetTrackLyrics(ctx, track.ID)
	if err != nil {
		if errors.Is(err, musixmatch.ErrResourceNotFound) {
			return nil, nil //nolint:nilnil // Missing lyrics are not an error.
		}

		return nil, err
	}

	if lyrics == nil || strings.TrimSpace(lyrics.Body) == "" {
		return nil, nil //nolint:nilnil // Empty lyrics are not an error.
	}

	return &fetchedLyrics{text: lyrics.Body, isSynced: false}, nil
}

func (s *ServiceImpl) saveLyrics(ctx context.Context, trackPath string, lyrics *fetchedLyrics) {
	lyricsPath := s.lyricsPath(trackPath, lyrics.isSynced)

	if s.cfg.DryRun {
		if isExist, _ := utils.IsFileExist(lyricsPath); isExist && !s.cfg.ReplaceLyrics {
			logger.Infof(ctx, "[DRY-RUN] Lyrics '%s' already exists, would skip", lyricsPath)
			s.incrementSkipped(SkipReasonExists)

			return
		}

		logger.Infof(ctx, "[DRY-RUN] Would save lyrics to: %s", lyricsPath)
		s.incrementSaved(lyrics.isSynced, int64(len(lyrics.text)))

		return
	}

	isLyricsExist, err := s.writeLyrics(ctx, lyrics.text, lyricsPath)
	if err != nil {
		s.recordFailure(ctx, trackPath, PhaseWrite, err)

		return
	}

	if isLyricsExist {
		s.incrementSkipped(SkipReasonExists)
	} else {
		s.incrementSaved(lyrics.isSynced, int64(len(lyrics.text)))
		logger.Infof(ctx, "Lyrics saved to file: %s", lyricsPath)
	}

	if !s.cfg.EmbedLyrics {
		return
	}

	err = s.tagProcessor.WriteLyrics(ctx, &WriteLyricsRequest{
		TrackPath: trackPath,
		Lyrics:    lyrics.text,
		IsSynced:  lyrics.isSynced,
	})
	if err != nil {
		s.recordFailure(ctx, trackPath, PhaseEmbed, err)

		return
	}

	s.incrementEmbedded()
}

// lyricsPath returns <name>.lrc for synced lyrics and <name>.txt for plain ones,
// next to the audio file or under OutputPath when set.
func (s *ServiceImpl) lyricsPath(trackPath string, isSynced bool) string {
	extension := constants.ExtensionTXT
	if isSynced {
		extension = constants.ExtensionLRC
	}

	filename := utils.SetFileExtension(trackPath, extension, true)
	if s.cfg.OutputPath == "" {
		return filename
	}

	return filepath.Join(s.cfg.OutputPath, filepath.Base(filename))
}

func (s *ServiceImpl) writeLyrics(ctx context.Context, lyrics, destinationPath string) (bool, error) {
	fileOptions := overwriteFileOptions
	if !s.cfg.ReplaceLyrics {
		fileOptions = createNewFileOptions
	}

	file, err := os.OpenFile(filepath.Clean(destinationPath), fileOptions, constants.DefaultFilePermissions)
	if err != nil {
		if os.IsExist(err) && !s.cfg.ReplaceLyrics {
			logger.Infof(ctx, "File '%s' already exists, skipping", destinationPath)

			return true, nil
		}

		return false, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	_, err = file.WriteString(lyrics)

	return false, err
}

func isSupportedAudioFile(trackPath string) bool {
	switch strings.ToLower(filepath.Ext(trackPath)) {
	case constants.ExtensionMP3, constants.ExtensionFLAC:
		return true
	default:
		return false
	}
}
