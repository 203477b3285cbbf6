package app

import (
	"context"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
	lyrics_service "github.com/oshokin/musixmatch-client/internal/service/lyrics"
)

// ExecuteSaveCommand fetches lyrics for the given audio files and saves them next to each file.
func ExecuteSaveCommand(ctx context.Context, cfg *config.Config, client musixmatch.Client, paths []string) {
	s := lyrics_service.NewService(
		cfg,
		client,
		lyrics_service.NewTagReader(),
		lyrics_service.NewTagProcessor(),
	)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintSummary(ctx)
	}()

	s.SaveLyrics(ctx, paths)
}
