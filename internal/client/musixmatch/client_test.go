package musixmatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
	mock_musixmatch "github.com/oshokin/musixmatch-client/internal/client/musixmatch/mocks"
)

const trackBody = `{"track":{"track_id":42,"commontrack_id":4242,"track_name":"Song","track_length":215,` +
	`"artist_name":"Artist","album_name":"Album","track_spotify_id":"spotify:track:1","has_subtitles":1}}`

func ok(body string) *musixmatch.StructuredEnvelope {
	return &musixmatch.StructuredEnvelope{
		StatusCode:  musixmatch.StatusSuccess,
		TimeElapsed: 0.01,
		Header:      `{"status_code":200,"execute_time":0.01}`,
		Body:        body,
	}
}

func newClient(t *testing.T, cacheSize int) (musixmatch.Client, *mock_musixmatch.MockEngine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := mock_musixmatch.NewMockEngine(ctrl)

	client, err := musixmatch.NewClientWithEngine(engine, cacheSize)
	require.NoError(t, err)

	return client, engine
}

// hasArgument matches Arguments containing key=value.
func hasArgument(key, value string) gomock.Matcher {
	return gomock.Cond(func(x musixmatch.Arguments) bool {
		got, found := x.Get(key)

		return found && got == value
	})
}

// TestClient_GetUserToken tests token retrieval.
func TestClient_GetUserToken(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTokenGet, gomock.Nil(), gomock.Nil(), gomock.Nil()).
		Return(ok(`{"user_token":"fresh"}`), nil)

	token, err := client.GetUserToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

// TestClient_RequestJWT tests JWT retrieval.
func TestClient_RequestJWT(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodRequestJWTToken, gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(ok(`{"jwt":"header.payload.signature"}`), nil)

	jwt, err := client.RequestJWT(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", jwt)
}

// TestClient_StatusError tests that a failing envelope status becomes a typed error.
func TestClient_StatusError(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTokenGet, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&musixmatch.StructuredEnvelope{
			StatusCode: musixmatch.StatusUsageLimitReached,
			Header:     `{"status_code":402,"execute_time":0.001,"hint":"captcha"}`,
			Body:       `""`,
		}, nil)

	_, err := client.GetUserToken(context.Background())
	require.ErrorIs(t, err, musixmatch.ErrUsageLimitReached)

	var statusErr *musixmatch.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, musixmatch.MethodTokenGet, statusErr.Method)
	assert.Equal(t, "captcha", statusErr.Hint)
}

// TestClient_EngineError tests that engine errors are returned unchanged.
func TestClient_EngineError(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)
	transportErr := errors.New("connection reset")

	engine.EXPECT().
		SendRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, transportErr)

	_, err := client.GetTrack(context.Background(), 1)
	require.ErrorIs(t, err, transportErr)
}

// TestClient_RawEnvelopeRejected tests that typed calls need a parsed envelope.
func TestClient_RawEnvelopeRejected(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&musixmatch.RawEnvelope{Text: trackBody}, nil)

	_, err := client.GetTrack(context.Background(), 42)
	require.ErrorIs(t, err, musixmatch.ErrMalformedEnvelope)
}

// TestClient_SearchTracks tests search arguments and result unwrapping.
func TestClient_SearchTracks(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(
			gomock.Any(),
			musixmatch.MethodTrackSearch,
			gomock.All(
				hasArgument("q_artist", "Artist"),
				hasArgument("q_track", "Song"),
				hasArgument("f_has_lyrics", "1"),
				hasArgument("s_track_rating", "desc"),
			),
			gomock.Nil(),
			gomock.Nil(),
		).
		Return(ok(`{"track_list":[{"track":{"track_id":1,"track_name":"Song"}},{"track":null},`+
			`{"track":{"track_id":2,"track_name":"Song (Live)"}}]}`), nil)

	tracks, err := client.SearchTracks(context.Background(), &musixmatch.TrackSearchParameters{
		Artist:    "Artist",
		Title:     "Song",
		HasLyrics: true,
		Sort:      musixmatch.SortTrackRatingDesc,
	})
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, int64(1), tracks[0].ID)
	assert.Equal(t, "Song (Live)", tracks[1].Name)
}

// TestClient_SearchTracks_NilParameters tests that a nil search is rejected locally.
func TestClient_SearchTracks_NilParameters(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, 0)

	_, err := client.SearchTracks(context.Background(), nil)
	require.ErrorIs(t, err, musixmatch.ErrNilSearchParameters)
}

// TestClient_GetTrack_Cache tests that repeated lookups hit the cache.
func TestClient_GetTrack_Cache(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 10)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackGet, hasArgument("track_id", "42"), gomock.Nil(), gomock.Nil()).
		Return(ok(trackBody), nil).
		Times(1)

	first, err := client.GetTrack(context.Background(), 42)
	require.NoError(t, err)

	second, err := client.GetTrack(context.Background(), 42)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "Song", second.Name)
	assert.True(t, second.HasSyncedLyrics())
	assert.False(t, second.HasPlainLyrics())
}

// TestClient_GetTrack_CacheDisabled tests that every lookup is sent without a cache.
func TestClient_GetTrack_CacheDisabled(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackGet, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ok(trackBody), nil).
		Times(2)

	for range 2 {
		_, err := client.GetTrack(context.Background(), 42)
		require.NoError(t, err)
	}
}

// TestClient_GetTrack_Empty tests a successful reply without a track.
func TestClient_GetTrack_Empty(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 10)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackGet, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ok(`{}`), nil)

	_, err := client.GetTrack(context.Background(), 7)
	require.ErrorIs(t, err, musixmatch.ErrTrackNotFound)
}

// TestClient_GetTrackSnippet tests snippets and the instrumental case.
func TestClient_GetTrackSnippet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"with vocals", `{"snippet":{"snippet_body":"Hello darkness","instrumental":0}}`, "Hello darkness"},
		{"instrumental", `{"snippet":{"snippet_body":"ignored","instrumental":1}}`, ""},
		{"missing snippet", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, engine := newClient(t, 0)

			engine.EXPECT().
				SendRequest(gomock.Any(), musixmatch.MethodTrackSnippetGet, hasArgument("track_id", "5"),
					gomock.Any(), gomock.Any()).
				Return(ok(tt.body), nil)

			snippet, err := client.GetTrackSnippet(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, snippet)
		})
	}
}

// TestClient_GetSyncedLyrics tests subtitle retrieval.
func TestClient_GetSyncedLyrics(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(
			gomock.Any(),
			musixmatch.MethodTrackSubtitleGet,
			gomock.All(hasArgument("track_id", "42"), hasArgument("subtitle_format", "lrc")),
			gomock.Nil(),
			gomock.Nil(),
		).
		Return(ok(`{"subtitle":{"subtitle_id":9,"subtitle_body":"[00:01.00] Hi","subtitle_language":"en"}}`), nil)

	subtitle, err := client.GetSyncedLyrics(context.Background(), 42, musixmatch.SubtitleFormatLRC)
	require.NoError(t, err)
	require.NotNil(t, subtitle)
	assert.Equal(t, "[00:01.00] Hi", subtitle.Body)
	assert.Equal(t, "en", subtitle.Language)
}

// TestClient_GetSyncedLyrics_UnknownFormat tests that bad formats never reach the engine.
func TestClient_GetSyncedLyrics_UnknownFormat(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, 0)

	_, err := client.GetSyncedLyrics(context.Background(), 42, musixmatch.SubtitleFormat("srt"))
	require.ErrorIs(t, err, musixmatch.ErrUnknownSubtitleFormat)
}

// TestClient_GetTrackLyrics tests plain lyrics retrieval.
func TestClient_GetTrackLyrics(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackLyricsGet, hasArgument("track_id", "3"), gomock.Nil(), gomock.Nil()).
		Return(ok(`{"lyrics":{"lyrics_id":1,"lyrics_body":"Line one\nLine two","explicit":1}}`), nil)

	lyrics, err := client.GetTrackLyrics(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Line one\nLine two", lyrics.Body)
	assert.Equal(t, 1, lyrics.Explicit)
}

// TestClient_SubmitSyncedLyrics tests the submission request shape.
func TestClient_SubmitSyncedLyrics(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 10)

	gomock.InOrder(
		engine.EXPECT().
			SendRequest(gomock.Any(), musixmatch.MethodTrackGet, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(ok(trackBody), nil),
		engine.EXPECT().
			SendRequest(
				gomock.Any(),
				musixmatch.MethodTrackSubtitlePost,
				gomock.All(
					hasArgument("commontrack_id", "4242"),
					hasArgument("length", "215"),
					hasArgument("q_track", "Song"),
					hasArgument("original_title", "Song"),
					hasArgument("q_artist", "Artist"),
					hasArgument("original_artist", "Artist"),
					hasArgument("original_uri", "spotify:track:1"),
					hasArgument("num_keypressed", "2048"),
					hasArgument("time_spent", "519852"),
				),
				hasArgument("subtitle_body", `[{"text":"Hi","time":{"total":1.0}}]`),
				gomock.Nil(),
			).
			Return(ok(`""`), nil),
	)

	err := client.SubmitSyncedLyrics(context.Background(), 42, `[{"text":"Hi","time":{"total":1.0}}]`)
	require.NoError(t, err)
}

// TestClient_SubmitSyncedLyrics_Empty tests that empty subtitles are rejected locally.
func TestClient_SubmitSyncedLyrics_Empty(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, 0)

	err := client.SubmitSyncedLyrics(context.Background(), 42, "  \n")
	require.ErrorIs(t, err, musixmatch.ErrEmptySubtitles)
}

// TestClient_SubmitSyncedLyrics_Rejected tests a refused submission.
func TestClient_SubmitSyncedLyrics_Rejected(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackGet, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ok(trackBody), nil)
	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodTrackSubtitlePost, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&musixmatch.StructuredEnvelope{StatusCode: musixmatch.StatusNotAuthorized, Body: `""`}, nil)

	err := client.SubmitSyncedLyrics(context.Background(), 42, "[]")
	require.ErrorIs(t, err, musixmatch.ErrNotAuthorized)
}

// TestClient_GetMissions tests that the registered raw routing is used.
func TestClient_GetMissions(t *testing.T) {
	t.Parallel()

	client, engine := newClient(t, 0)

	engine.EXPECT().
		SendRequest(gomock.Any(), musixmatch.MethodMissionsGet, gomock.Nil(),
			hasArgument("query", "{ missions { id } }"), gomock.Nil()).
		Return(&musixmatch.RawEnvelope{Text: `{"data":{"missions":[]}}`}, nil)

	text, err := client.GetMissions(context.Background(), "{ missions { id } }")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"missions":[]}}`, text)
}
