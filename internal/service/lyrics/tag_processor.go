package lyrics

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/musixmatch-client/internal/constants"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// TagProcessor writes lyrics into audio file tags.
type TagProcessor interface {
	WriteLyrics(ctx context.Context, req *WriteLyricsRequest) error
}

// WriteLyricsRequest contains parameters for embedding lyrics.
type WriteLyricsRequest struct {
	// TrackPath is the file path of the audio track.
	TrackPath string
	// Lyrics is the lyrics text, LRC when IsSynced is true.
	Lyrics string
	// IsSynced indicates LRC content.
	IsSynced bool
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// Tag keys for lyrics. Plain lyrics go under both vorbis keys.
const (
	vorbisLyrics          = "LYRICS"
	vorbisUnsyncedLyrics  = "UNSYNCEDLYRICS"
	id3SyncedLyricsFrame  = "SYLT"
	id3LyricsDescriptor   = "Lyrics"
	id3UnsyncedLyricsName = "Unsynchronised lyrics/text transcription"
)

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteLyrics replaces the lyrics stored in the file tags.
func (tp *TagProcessorImpl) WriteLyrics(ctx context.Context, req *WriteLyricsRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	switch strings.ToLower(filepath.Ext(req.TrackPath)) {
	case constants.ExtensionMP3:
		return tp.writeMP3Lyrics(ctx, req)
	case constants.ExtensionFLAC:
		return tp.writeFLACLyrics(req)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, req.TrackPath)
	}
}

func (tp *TagProcessorImpl) writeFLACLyrics(req *WriteLyricsRequest) error {
	commentResult, err := extractFLACComment(req.TrackPath)
	if err != nil {
		return err
	}

	tag := commentResult.Comment
	if tag == nil {
		tag = flacvorbis.New()
	}

	tag.Comments = removeVorbisKeys(tag.Comments, vorbisLyrics, vorbisUnsyncedLyrics)

	lyrics := strings.TrimSpace(req.Lyrics)

	if err = tag.Add(vorbisLyrics, lyrics); err != nil {
		return err
	}

	if !req.IsSynced {
		if err = tag.Add(vorbisUnsyncedLyrics, lyrics); err != nil {
			return err
		}
	}

	f := commentResult.File

	tagMeta := tag.Marshal()
	if commentResult.Index >= 0 {
		f.Meta[commentResult.Index] = &tagMeta
	} else {
		f.Meta = append(f.Meta, &tagMeta)
	}

	return f.Save(req.TrackPath)
}

// removeVorbisKeys drops every KEY=value comment whose key matches, case-insensitively.
func removeVorbisKeys(comments []string, keys ...string) []string {
	kept := comments[:0]

	for _, comment := range comments {
		key, _, _ := strings.Cut(comment, "=")

		matched := false

		for _, k := range keys {
			if strings.EqualFold(key, k) {
				matched = true

				break
			}
		}

		if !matched {
			kept = append(kept, comment)
		}
	}

	return kept
}

func (tp *TagProcessorImpl) writeMP3Lyrics(ctx context.Context, req *WriteLyricsRequest) error {
	//nolint:exhaustruct // ParseFrames left empty to keep every existing frame.
	tag, err := id3v2.Open(filepath.Clean(req.TrackPath), id3v2.Options{Parse: true})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.DeleteFrames(tag.CommonID(id3UnsyncedLyricsName))
	tag.DeleteFrames(id3SyncedLyricsFrame)

	lyrics := strings.TrimSpace(req.Lyrics)

	if req.IsSynced {
		result, parseErr := id3v2.ParseLRCFile(strings.NewReader(lyrics))
		if parseErr == nil && len(result.SynchronizedTexts) > 0 {
			tag.AddSynchronisedLyricsFrame(id3v2.SynchronisedLyricsFrame{
				Encoding: id3v2.EncodingUTF8,
				// Field is required, so we just use lingua franca.
				Language:          id3v2.EnglishISO6392Code,
				TimestampFormat:   id3v2.SYLTAbsoluteMillisecondsTimestampFormat,
				ContentType:       id3v2.SYLTLyricsContentType,
				ContentDescriptor: id3LyricsDescriptor,
				SynchronizedTexts: result.SynchronizedTexts,
			})
		} else {
			logger.Warnf(ctx, "Failed to parse LRC content for %s, storing it as plain text: %v", req.TrackPath, parseErr)
		}
	}

	// USLT is written in every case; SYLT is added on top for synced lyrics.
	//nolint:exhaustruct // ContentDescriptor not available in source data.
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding: id3v2.EncodingUTF8,
		Language: id3v2.EnglishISO6392Code,
		Lyrics:   lyrics,
	})

	return tag.Save()
}
