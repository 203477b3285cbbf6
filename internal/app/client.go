package app

import (
	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/config"
)

// NewClient creates the Musixmatch client from a validated configuration.
// Every command except token retrieval needs a user token.
func NewClient(cfg *config.Config, isTokenRequired bool) (musixmatch.Client, error) {
	if isTokenRequired {
		if err := config.RequireAuthToken(cfg); err != nil {
			return nil, err
		}
	}

	return musixmatch.NewClient(cfg)
}
