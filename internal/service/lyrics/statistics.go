package lyrics

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/musixmatch-client/internal/logger"
)

const summaryRule = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

func (s *ServiceImpl) incrementSaved(isSynced bool, bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.FilesProcessed++
	s.stats.LyricsSaved++
	s.stats.BytesWritten += bytes

	if isSynced {
		s.stats.SyncedLyricsSaved++
	}
}

// incrementSkipped counts a finished file that produced no new lyrics file.
func (s *ServiceImpl) incrementSkipped(reason SkipReason) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.FilesProcessed++
	s.stats.Skipped[reason]++
}

func (s *ServiceImpl) incrementEmbedded() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.LyricsEmbedded++
}

// recordFailure logs err and stores it for the summary.
// An embed failure happens after the file was counted, so it is not counted again.
func (s *ServiceImpl) recordFailure(ctx context.Context, trackPath string, phase Phase, err error) {
	logger.Errorf(ctx, "Failed to process '%s' (%s): %v", trackPath, phase, err)

	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	if phase != PhaseEmbed {
		s.stats.FilesProcessed++
	}

	s.stats.Failed++
	s.stats.Errors = append(s.stats.Errors, FileError{
		Path:    trackPath,
		Phase:   phase,
		Message: err.Error(),
	})
}

// PrintSummary prints a formatted summary of the last run.
func (s *ServiceImpl) PrintSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	stats := s.stats
	if stats.FilesProcessed == 0 {
		return
	}

	wasInterrupted := ctx.Err() != nil

	logger.Info(ctx, "")
	logger.Info(ctx, summaryRule)

	switch {
	case stats.IsDryRun:
		logger.Info(ctx, "                  DRY-RUN PREVIEW")
	case wasInterrupted:
		logger.Info(ctx, "            LYRICS SUMMARY (Interrupted)")
	default:
		logger.Info(ctx, "                     LYRICS SUMMARY")
	}

	logger.Info(ctx, summaryRule)
	logger.Infof(ctx, "Files:            %d total processed", stats.FilesProcessed)

	savedLabel := "Saved"
	if stats.IsDryRun {
		savedLabel = "Would Save"
	}

	if stats.LyricsSaved > 0 {
		logger.Infof(ctx, "  %-15s %d (%d synced)", savedLabel+":", stats.LyricsSaved, stats.SyncedLyricsSaved)
	}

	if stats.LyricsEmbedded > 0 {
		logger.Infof(ctx, "  Embedded:       %d", stats.LyricsEmbedded)
	}

	s.printSkipped(ctx, stats)

	if stats.Failed > 0 {
		logger.Infof(ctx, "  Failed:         %d", stats.Failed)
	}

	if stats.BytesWritten > 0 {
		//nolint:gosec // BytesWritten is always positive, no overflow risk.
		logger.Infof(ctx, "Lyrics Size:      %s", humanize.Bytes(uint64(stats.BytesWritten)))
	}

	if !stats.IsDryRun && !stats.StartTime.IsZero() && !stats.EndTime.IsZero() {
		logger.Infof(ctx, "Duration:         %s", formatDuration(stats.EndTime.Sub(stats.StartTime)))
	}

	logger.Info(ctx, summaryRule)

	s.printErrors(ctx, stats)
}

func (s *ServiceImpl) printSkipped(ctx context.Context, stats *Statistics) {
	total := stats.TotalSkipped()
	if total == 0 {
		return
	}

	logger.Infof(ctx, "  Skipped:        %d total", total)

	for _, reason := range []SkipReason{
		SkipReasonExists,
		SkipReasonNotFound,
		SkipReasonInstrumental,
		SkipReasonNoTags,
		SkipReasonUnsupported,
	} {
		if count := stats.Skipped[reason]; count > 0 {
			logger.Infof(ctx, "    %-13s %s", string(reason)+":", humanize.Comma(count))
		}
	}
}

func (s *ServiceImpl) printErrors(ctx context.Context, stats *Statistics) {
	if len(stats.Errors) == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Errorf(ctx, "ERRORS ENCOUNTERED: %d", len(stats.Errors))

	for i := range stats.Errors {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "  [%d] %s", i+1, stats.Errors[i].Path)
		logger.Errorf(ctx, "      Phase: %s", stats.Errors[i].Phase)
		logger.Errorf(ctx, "      Error: %s", stats.Errors[i].Message)
	}
}
