package lyrics

import (
	"errors"
	"time"
)

// TrackTags holds the tag values used to look a file up.
type TrackTags struct {
	// Artist is the performing artist.
	Artist string
	// Title is the track title.
	Title string
	// Album is the album title, optional.
	Album string
}

// SkipReason explains why a file produced no lyrics.
type SkipReason string

const (
	// SkipReasonExists means the lyrics file already exists and replace_lyrics is off.
	SkipReasonExists SkipReason = "exists"
	// SkipReasonUnsupported means the file is neither MP3 nor FLAC.
	SkipReasonUnsupported SkipReason = "unsupported"
	// SkipReasonNoTags means artist or title is missing.
	SkipReasonNoTags SkipReason = "no_tags"
	// SkipReasonNotFound means no track or no lyrics were found.
	SkipReasonNotFound SkipReason = "not_found"
	// SkipReasonInstrumental means the track has no vocals.
	SkipReasonInstrumental SkipReason = "instrumental"
)

// Phase names the step a file failed in.
type Phase string

const (
	// PhaseReadTags is reading the audio file tags.
	PhaseReadTags Phase = "read_tags"
	// PhaseSearch is looking the track up.
	PhaseSearch Phase = "search"
	// PhaseFetch is downloading the lyrics.
	PhaseFetch Phase = "fetch"
	// PhaseWrite is writing the lyrics file.
	PhaseWrite Phase = "write"
	// PhaseEmbed is writing lyrics into the tags.
	PhaseEmbed Phase = "embed"
)

// FileError records a failed file.
type FileError struct {
	// Path is the audio file.
	Path string
	// Phase is the failing step.
	Phase Phase
	// Message is the error text.
	Message string
}

// Statistics tracks the results of a SaveLyrics run.
type Statistics struct {
	// FilesProcessed is the number of files looked at.
	FilesProcessed int64
	// LyricsSaved is the number of lyrics files written.
	LyricsSaved int64
	// SyncedLyricsSaved is how many of LyricsSaved were time-synced.
	SyncedLyricsSaved int64
	// LyricsEmbedded is the number of files whose tags were updated.
	LyricsEmbedded int64
	// BytesWritten is the total size of written lyrics files.
	BytesWritten int64
	// Skipped counts skipped files by reason.
	Skipped map[SkipReason]int64
	// Failed is the number of files that failed.
	Failed int64
	// Errors holds the failure details.
	Errors []FileError
	// StartTime is when the run started.
	StartTime time.Time
	// EndTime is when the run finished.
	EndTime time.Time
	// IsDryRun indicates a preview run.
	IsDryRun bool
}

// fetchedLyrics is the text selected for a track.
type fetchedLyrics struct {
	// text is the lyrics body.
	text string
	// isSynced is true for LRC subtitles.
	isSynced bool
}

// Static error definitions for better error handling.
var (
	// ErrEmptyTrackPath indicates that the track file path is empty.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
	// ErrUnsupportedFormat indicates a file that is neither MP3 nor FLAC.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

func newStatistics() *Statistics {
	return &Statistics{Skipped: make(map[SkipReason]int64)}
}

// TotalSkipped returns the number of skipped files.
func (s *Statistics) TotalSkipped() int64 {
	var total int64
	for _, count := range s.Skipped {
		total += count
	}

	return total
}
