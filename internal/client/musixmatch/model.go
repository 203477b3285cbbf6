package musixmatch

// UserTokenResponse is the body of token.get.
type UserTokenResponse struct {
	// UserToken is the token to send as usertoken.
	UserToken string `json:"user_token"`
}

// JWTResponse is the body of jwt.get.
type JWTResponse struct {
	// JWT is the signed token.
	JWT string `json:"jwt"`
}

// TrackSearchResponse is the body of track.search.
type TrackSearchResponse struct {
	// TrackList holds the matches in ranking order.
	TrackList []*TrackListItem `json:"track_list"`
}

// TrackListItem wraps a single search match.
type TrackListItem struct {
	// Track is the matched track.
	Track *Track `json:"track"`
}

// TrackGetResponse is the body of track.get.
type TrackGetResponse struct {
	// Track is the requested track.
	Track *Track `json:"track"`
}

// TrackSnippetGetResponse is the body of track.snippet.get.
type TrackSnippetGetResponse struct {
	// Snippet is the requested snippet.
	Snippet *Snippet `json:"snippet"`
}

// TrackSubtitleGetResponse is the body of track.subtitle.get.
type TrackSubtitleGetResponse struct {
	// Subtitle is the requested subtitle.
	Subtitle *Subtitle `json:"subtitle"`
}

// TrackLyricsGetResponse is the body of track.lyrics.get.
type TrackLyricsGetResponse struct {
	// Lyrics is the requested lyrics.
	Lyrics *Lyrics `json:"lyrics"`
}

// Track represents track metadata.
type Track struct {
	// ID is the Musixmatch track ID.
	ID int64 `json:"track_id"`
	// CommontrackID groups every edition of the same song.
	CommontrackID int64 `json:"commontrack_id"`
	// MBID is the MusicBrainz recording ID.
	MBID string `json:"track_mbid"`
	// ISRC is the International Standard Recording Code.
	ISRC string `json:"track_isrc"`
	// SpotifyID is the Spotify track ID.
	SpotifyID string `json:"track_spotify_id"`
	// Name is the track title.
	Name string `json:"track_name"`
	// Rating is the popularity rating (0-100).
	Rating int `json:"track_rating"`
	// Length is the duration in seconds.
	Length int `json:"track_length"`
	// Instrumental is 1 for tracks without vocals.
	Instrumental int `json:"instrumental"`
	// Explicit is 1 for explicit content.
	Explicit int `json:"explicit"`
	// HasLyrics is 1 when lyrics exist.
	HasLyrics int `json:"has_lyrics"`
	// HasSubtitles is 1 when synced lyrics exist.
	HasSubtitles int `json:"has_subtitles"`
	// HasRichsync is 1 when word-level synced lyrics exist.
	HasRichsync int `json:"has_richsync"`
	// NumFavourite is the number of users who marked the track as favourite.
	NumFavourite int `json:"num_favourite"`
	// AlbumID is the Musixmatch album ID.
	AlbumID int64 `json:"album_id"`
	// AlbumName is the album title.
	AlbumName string `json:"album_name"`
	// ArtistID is the Musixmatch artist ID.
	ArtistID int64 `json:"artist_id"`
	// ArtistName is the performing artist.
	ArtistName string `json:"artist_name"`
	// AlbumCoverart100 is the 100x100 cover URL.
	AlbumCoverart100 string `json:"album_coverart_100x100"`
	// AlbumCoverart500 is the 500x500 cover URL.
	AlbumCoverart500 string `json:"album_coverart_500x500"`
	// ShareURL is the public page of the track.
	ShareURL string `json:"track_share_url"`
	// Restricted is 1 when the content is region-locked.
	Restricted int `json:"restricted"`
	// FirstReleaseDate is an RFC 3339 timestamp.
	FirstReleaseDate string `json:"first_release_date"`
	// UpdatedTime is an RFC 3339 timestamp.
	UpdatedTime string `json:"updated_time"`
}

// Lyrics represents plain lyrics.
type Lyrics struct {
	// ID is the lyrics ID.
	ID int64 `json:"lyrics_id"`
	// Restricted is 1 when the content is region-locked.
	Restricted int `json:"restricted"`
	// Instrumental is 1 for tracks without vocals.
	Instrumental int `json:"instrumental"`
	// Body is the lyrics text.
	Body string `json:"lyrics_body"`
	// Language is the ISO 639-1 language code.
	Language string `json:"lyrics_language"`
	// LanguageDescription is the language name.
	LanguageDescription string `json:"lyrics_language_description"`
	// Copyright is the copyright notice.
	Copyright string `json:"lyrics_copyright"`
	// BacklinkURL points back to the lyrics page.
	BacklinkURL string `json:"backlink_url"`
	// Verified is 1 when the lyrics were verified.
	Verified int `json:"verified"`
	// Explicit is 1 for explicit content.
	Explicit int `json:"explicit"`
	// UpdatedTime is an RFC 3339 timestamp.
	UpdatedTime string `json:"updated_time"`
}

// Subtitle represents synced lyrics.
type Subtitle struct {
	// ID is the subtitle ID.
	ID int64 `json:"subtitle_id"`
	// Restricted is 1 when the content is region-locked.
	Restricted int `json:"restricted"`
	// Body is the subtitle text in the requested format.
	Body string `json:"subtitle_body"`
	// AvgCount is the average number of lines.
	AvgCount int `json:"subtitle_avg_count"`
	// Length is the duration covered, in seconds.
	Length int `json:"subtitle_length"`
	// Language is the ISO 639-1 language code.
	Language string `json:"subtitle_language"`
	// LanguageDescription is the language name.
	LanguageDescription string `json:"subtitle_language_description"`
	// Copyright is the copyright notice.
	Copyright string `json:"lyrics_copyright"`
	// UpdatedTime is an RFC 3339 timestamp.
	UpdatedTime string `json:"updated_time"`
}

// Snippet is a short representative lyrics line.
type Snippet struct {
	// ID is the snippet ID.
	ID int64 `json:"snippet_id"`
	// Language is the ISO 639-1 language code.
	Language string `json:"snippet_language"`
	// Restricted is 1 when the content is region-locked.
	Restricted int `json:"restricted"`
	// Instrumental is 1 for tracks without vocals.
	Instrumental int `json:"instrumental"`
	// Body is the snippet text.
	Body string `json:"snippet_body"`
	// UpdatedTime is an RFC 3339 timestamp.
	UpdatedTime string `json:"updated_time"`
}

// IsInstrumental reports whether the track has no vocals.
func (t *Track) IsInstrumental() bool { return t.Instrumental != 0 }

// HasSyncedLyrics reports whether synced lyrics exist.
func (t *Track) HasSyncedLyrics() bool { return t.HasSubtitles != 0 }

// HasPlainLyrics reports whether plain lyrics exist.
func (t *Track) HasPlainLyrics() bool { return t.HasLyrics != 0 }
