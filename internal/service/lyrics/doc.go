// Package lyrics fetches lyrics for local audio files.
// It reads artist and title from MP3 and FLAC tags, resolves the track through the
// Musixmatch client, saves synced or plain lyrics next to the file and can embed
// them back into the tags.
package lyrics
