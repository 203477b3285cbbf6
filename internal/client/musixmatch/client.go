package musixmatch

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/musixmatch-client/internal/config"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// Client defines the typed operations on top of the Engine.
type Client interface {
	// GetUserToken requests a fresh user token.
	GetUserToken(ctx context.Context) (string, error)
	// RequestJWT requests a signed JWT for the current session.
	RequestJWT(ctx context.Context) (string, error)
	// SearchTracks searches the track database.
	SearchTracks(ctx context.Context, params *TrackSearchParameters) ([]*Track, error)
	// GetTrack retrieves a track by its Musixmatch ID.
	GetTrack(ctx context.Context, trackID int64) (*Track, error)
	// GetTrackSnippet returns the snippet of a track, or "" for instrumentals.
	GetTrackSnippet(ctx context.Context, trackID int64) (string, error)
	// GetSyncedLyrics retrieves synced lyrics in the given format.
	GetSyncedLyrics(ctx context.Context, trackID int64, format SubtitleFormat) (*Subtitle, error)
	// GetTrackLyrics retrieves plain lyrics.
	GetTrackLyrics(ctx context.Context, trackID int64) (*Lyrics, error)
	// SubmitSyncedLyrics submits synced lyrics in the mxm format.
	SubmitSyncedLyrics(ctx context.Context, trackID int64, subtitles string) error
	// GetMissions runs a GraphQL query against the missions backend and returns the raw reply.
	GetMissions(ctx context.Context, query string) (string, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// engine performs the HTTP calls.
	engine Engine
	// tracksCache holds decoded tracks by ID; nil when disabled.
	tracksCache *lru.Cache[int64, *Track]
}

// Fixed values the desktop client sends when submitting subtitles.
// The service does not validate them.
const (
	submitNumKeyPressed = "2048"
	submitTimeSpent     = "519852"
)

// NewClient creates a client with its own engine from the validated configuration.
func NewClient(cfg *config.Config) (Client, error) {
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	return NewClientWithEngine(engine, cfg.TrackCacheSize)
}

// NewClientWithEngine creates a client over an existing engine.
// trackCacheSize of 0 disables track caching.
func NewClientWithEngine(engine Engine, trackCacheSize int) (Client, error) {
	client := &ClientImpl{engine: engine}

	if trackCacheSize > 0 {
		tracksCache, err := lru.New[int64, *Track](trackCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create tracks cache: %w", err)
		}

		client.tracksCache = tracksCache
	}

	return client, nil
}

// GetUserToken requests a fresh user token.
func (c *ClientImpl) GetUserToken(ctx context.Context) (string, error) {
	result, err := fetchBody[UserTokenResponse](c, ctx, MethodTokenGet, nil, nil)
	if err != nil {
		return "", err
	}

	return result.UserToken, nil
}

// RequestJWT requests a signed JWT for the current session.
func (c *ClientImpl) RequestJWT(ctx context.Context) (string, error) {
	result, err := fetchBody[JWTResponse](c, ctx, MethodRequestJWTToken, nil, nil)
	if err != nil {
		return "", err
	}

	return result.JWT, nil
}

// SearchTracks searches the track database.
func (c *ClientImpl) SearchTracks(ctx context.Context, params *TrackSearchParameters) ([]*Track, error) {
	if params == nil {
		return nil, ErrNilSearchParameters
	}

	result, err := fetchBody[TrackSearchResponse](c, ctx, MethodTrackSearch, params.arguments(), nil)
	if err != nil {
		return nil, err
	}

	tracks := make([]*Track, 0, len(result.TrackList))

	for _, item := range result.TrackList {
		if item == nil || item.Track == nil {
			continue
		}

		tracks = append(tracks, item.Track)
	}

	return tracks, nil
}

// GetTrack retrieves a track by its Musixmatch ID.
// Uses an LRU cache to avoid redundant API calls for the same track.
func (c *ClientImpl) GetTrack(ctx context.Context, trackID int64) (*Track, error) {
	if c.tracksCache != nil {
		if cached, ok := c.tracksCache.Get(trackID); ok {
			logger.Debugf(ctx, "Track cache hit for ID: %d", trackID)

			return cached, nil
		}
	}

	result, err := fetchBody[TrackGetResponse](c, ctx, MethodTrackGet, trackArguments(trackID), nil)
	if err != nil {
		return nil, err
	}

	if result.Track == nil {
		return nil, fmt.Errorf("%w: %d", ErrTrackNotFound, trackID)
	}

	if c.tracksCache != nil {
		c.tracksCache.Add(trackID, result.Track)
	}

	return result.Track, nil
}

// GetTrackSnippet returns the snippet of a track, or "" for instrumentals.
func (c *ClientImpl) GetTrackSnippet(ctx context.Context, trackID int64) (string, error) {
	result, err := fetchBody[TrackSnippetGetResponse](c, ctx, MethodTrackSnippetGet, trackArguments(trackID), nil)
	if err != nil {
		return "", err
	}

	if result.Snippet == nil || result.Snippet.Instrumental != 0 {
		return "", nil
	}

	return result.Snippet.Body, nil
}

// GetSyncedLyrics retrieves synced lyrics in the given format.
func (c *ClientImpl) GetSyncedLyrics(ctx context.Context, trackID int64, format SubtitleFormat) (*Subtitle, error) {
	if _, err := ParseSubtitleFormat(string(format)); err != nil {
		return nil, err
	}

	args := trackArguments(trackID).Set("subtitle_format", string(format))

	result, err := fetchBody[TrackSubtitleGetResponse](c, ctx, MethodTrackSubtitleGet, args, nil)
	if err != nil {
		return nil, err
	}

	return result.Subtitle, nil
}

// GetTrackLyrics retrieves plain lyrics.
func (c *ClientImpl) GetTrackLyrics(ctx context.Context, trackID int64) (*Lyrics, error) {
	args := trackArguments(trackID).Set("part", "user,lyrics_verified_by")

	result, err := fetchBody[TrackLyricsGetResponse](c, ctx, MethodTrackLyricsGet, args, nil)
	if err != nil {
		return nil, err
	}

	return result.Lyrics, nil
}

// SubmitSyncedLyrics submits synced lyrics in the mxm format.
// The service has been observed to accept the submission, award points and retract it shortly after.
func (c *ClientImpl) SubmitSyncedLyrics(ctx context.Context, trackID int64, subtitles string) error {
	if strings.TrimSpace(subtitles) == "" {
		return ErrEmptySubtitles
	}

	track, err := c.GetTrack(ctx, trackID)
	if err != nil {
		return fmt.Errorf("failed to look up track %d: %w", trackID, err)
	}

	query := NewArguments(
		"commontrack_id", strconv.FormatInt(track.CommontrackID, 10),
		"length", strconv.Itoa(track.Length),
		"q_track", track.Name,
		"original_title", track.Name,
		"q_artist", track.ArtistName,
		"original_artist", track.ArtistName,
		"original_uri", track.SpotifyID,
		"num_keypressed", submitNumKeyPressed,
		"time_spent", submitTimeSpent,
	)

	envelope, err := c.send(ctx, MethodTrackSubtitlePost, query, NewArguments("subtitle_body", subtitles))
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Subtitles submitted", "track_id", trackID, "execute_time", envelope.TimeElapsed)

	return nil
}

// GetMissions runs a GraphQL query against the missions backend and returns the raw reply.
func (c *ClientImpl) GetMissions(ctx context.Context, query string) (string, error) {
	envelope, err := c.engine.SendRequest(ctx, MethodMissionsGet, nil, NewArguments("query", query), nil)
	if err != nil {
		return "", err
	}

	return envelope.Payload(), nil
}

// send calls the engine and requires a successful structured envelope.
func (c *ClientImpl) send(
	ctx context.Context,
	method Method,
	query Arguments,
	body Arguments,
) (*StructuredEnvelope, error) {
	envelope, err := c.engine.SendRequest(ctx, method, query, body, nil)
	if err != nil {
		return nil, err
	}

	structured, ok := envelope.(*StructuredEnvelope)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned an unparsed response", ErrMalformedEnvelope, method)
	}

	if err = structured.Err(method); err != nil {
		return nil, err
	}

	return structured, nil
}

// fetchBody calls method and decodes the envelope body into T.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchBody[T any](
	c *ClientImpl,
	ctx context.Context,
	method Method,
	query Arguments,
	body Arguments,
) (*T, error) {
	envelope, err := c.send(ctx, method, query, body)
	if err != nil {
		return nil, err
	}

	result, err := Decode[T](envelope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return result, nil
}

func trackArguments(trackID int64) Arguments {
	return NewArguments("track_id", strconv.FormatInt(trackID, 10))
}
