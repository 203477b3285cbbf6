package musixmatch

import (
	"fmt"
	"strconv"
	"strings"
)

// SubtitleFormat is the text format of synced lyrics.
type SubtitleFormat string

// Supported subtitle formats.
const (
	// SubtitleFormatLRC is the common [mm:ss.xx] line format.
	SubtitleFormatLRC SubtitleFormat = "lrc"
	// SubtitleFormatDFXP is the XML timed text format.
	SubtitleFormatDFXP SubtitleFormat = "dfxp"
	// SubtitleFormatSTLEDU is the EBU subtitle format.
	SubtitleFormatSTLEDU SubtitleFormat = "stledu"
	// SubtitleFormatMusixmatch is the JSON format the service uses internally and expects on submit.
	SubtitleFormatMusixmatch SubtitleFormat = "mxm"
)

// ParseSubtitleFormat converts text into a SubtitleFormat.
func ParseSubtitleFormat(s string) (SubtitleFormat, error) {
	format := SubtitleFormat(strings.ToLower(strings.TrimSpace(s)))

	switch format {
	case SubtitleFormatLRC, SubtitleFormatDFXP, SubtitleFormatSTLEDU, SubtitleFormatMusixmatch:
		return format, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownSubtitleFormat, s)
	}
}

// SortStrategy orders search results.
type SortStrategy int

// Supported sort strategies.
const (
	SortNone SortStrategy = iota
	SortTrackRatingAsc
	SortTrackRatingDesc
	SortArtistRatingAsc
	SortArtistRatingDesc
)

// argument returns the query pair for the strategy; SortNone yields an empty pair.
func (s SortStrategy) argument() (string, string) {
	switch s {
	case SortTrackRatingAsc:
		return "s_track_rating", "asc"
	case SortTrackRatingDesc:
		return "s_track_rating", "desc"
	case SortArtistRatingAsc:
		return "s_artist_rating", "asc"
	case SortArtistRatingDesc:
		return "s_artist_rating", "desc"
	case SortNone:
		return "", ""
	default:
		return "", ""
	}
}

// ParseSortStrategy converts names like "track-desc" into a SortStrategy.
func ParseSortStrategy(s string) (SortStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, true
	case "track-asc":
		return SortTrackRatingAsc, true
	case "track-desc":
		return SortTrackRatingDesc, true
	case "artist-asc":
		return SortArtistRatingAsc, true
	case "artist-desc":
		return SortArtistRatingDesc, true
	default:
		return SortNone, false
	}
}

// TrackSearchParameters describes a track.search call. Zero values are not sent.
type TrackSearchParameters struct {
	// Query matches any word in the title, artist name or lyrics.
	Query string
	// LyricsQuery matches words in the lyrics.
	LyricsQuery string
	// Artist matches the artist name.
	Artist string
	// Title matches the track title.
	Title string
	// Album matches the album title.
	Album string
	// HasLyrics keeps only tracks with lyrics.
	HasLyrics bool
	// HasSubtitles keeps only tracks with synced lyrics.
	HasSubtitles bool
	// Sort orders the results.
	Sort SortStrategy
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of results per page (1-100).
	PageSize int
	// Language keeps only lyrics in this ISO 639-1 language.
	Language string
}

// arguments converts the parameters into query arguments.
func (p *TrackSearchParameters) arguments() Arguments {
	args := NewArguments(
		"q", p.Query,
		"q_lyrics", p.LyricsQuery,
		"q_artist", p.Artist,
		"q_track", p.Title,
		"q_album", p.Album,
		"f_has_lyrics", flag(p.HasLyrics),
		"f_has_subtitle", flag(p.HasSubtitles),
	)

	if key, value := p.Sort.argument(); key != "" {
		args = args.Set(key, value)
	}

	return args.
		Set("page", positive(p.Page)).
		Set("page_size", positive(p.PageSize)).
		Set("f_lyrics_language", p.Language)
}

func flag(b bool) string {
	if b {
		return "1"
	}

	return ""
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}

	return strconv.Itoa(n)
}
