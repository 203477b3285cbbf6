package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/oshokin/musixmatch-client/internal/client/musixmatch"
)

//nolint:gochecknoglobals // Immutable styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7A35C")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6F93"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(14)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

const (
	yes = "yes"
	no  = "-"
)

// renderTracks renders search results as a table.
func renderTracks(tracks []*musixmatch.Track) string {
	rows := make([][]string, 0, len(tracks))

	for _, track := range tracks {
		rows = append(rows, []string{
			strconv.FormatInt(track.ID, 10),
			track.ArtistName,
			track.Name,
			track.AlbumName,
			formatLength(track.Length),
			flagText(track.HasPlainLyrics()),
			flagText(track.HasSyncedLyrics()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers("ID", "Artist", "Title", "Album", "Length", "Lyrics", "Synced").
		Rows(rows...)

	return t.String()
}

// writeTrack writes the details of a single track.
func writeTrack(out io.Writer, track *musixmatch.Track) error {
	fields := []struct {
		label string
		value string
	}{
		{"Track ID", strconv.FormatInt(track.ID, 10)},
		{"Commontrack", strconv.FormatInt(track.CommontrackID, 10)},
		{"Title", track.Name},
		{"Artist", track.ArtistName},
		{"Album", track.AlbumName},
		{"Length", formatLength(track.Length)},
		{"Rating", strconv.Itoa(track.Rating)},
		{"Lyrics", flagText(track.HasPlainLyrics())},
		{"Synced", flagText(track.HasSyncedLyrics())},
		{"Instrumental", flagText(track.IsInstrumental())},
		{"ISRC", track.ISRC},
		{"Spotify", track.SpotifyID},
		{"Released", formatDate(track.FirstReleaseDate)},
		{"URL", track.ShareURL},
	}

	var sb strings.Builder

	for _, field := range fields {
		if field.value == "" {
			continue
		}

		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(field.label), field.value))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(out, sb.String())

	return err
}

// writeText writes text with a trailing newline and an optional faint footer.
func writeText(out io.Writer, text, footer string) error {
	if _, err := fmt.Fprintln(out, strings.TrimRight(text, "\n")); err != nil {
		return err
	}

	if footer == "" {
		return nil
	}

	_, err := fmt.Fprintln(out, mutedStyle.Render(footer))

	return err
}

func formatLength(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func formatDate(value string) string {
	if value == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}

	return parsed.Format(time.DateOnly)
}

func flagText(b bool) string {
	if b {
		return yes
	}

	return no
}
