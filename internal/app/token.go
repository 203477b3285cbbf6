package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// ExecuteTokenGetCommand requests a new user token, prints it and optionally saves it
// to the configuration file.
func ExecuteTokenGetCommand(
	ctx context.Context,
	cfg *config.Config,
	client musixmatch.Client,
	isSaved bool,
	out io.Writer,
) error {
	token, err := client.GetUserToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user token: %w", err)
	}

	if !isSaved {
		return writeText(out, token, "")
	}

	cfg.AuthToken = token

	if err = config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Infof(ctx, "User token saved to %s", cfg.ConfigFilename)

	return nil
}

// ExecuteTokenJWTCommand prints a JWT for the current session.
func ExecuteTokenJWTCommand(ctx context.Context, client musixmatch.Client, out io.Writer) error {
	jwt, err := client.RequestJWT(ctx)
	if err != nil {
		return fmt.Errorf("failed to get JWT: %w", err)
	}

	return writeText(out, jwt, "")
}

// ExecuteMissionsCommand runs a GraphQL query against the missions backend and prints the reply.
func ExecuteMissionsCommand(ctx context.Context, client musixmatch.Client, query string, out io.Writer) error {
	reply, err := client.GetMissions(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query missions: %w", err)
	}

	return writeText(out, reply, "")
}
