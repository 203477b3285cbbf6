package lyrics

//go:generate $MOCKGEN -source=tag_reader.go -destination=mocks/tag_reader_mock.go

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/musixmatch-client/internal/constants"
	"github.com/oshokin/musixmatch-client/internal/logger"
)

// TagReader reads the tags used to look a file up.
type TagReader interface {
	ReadTags(ctx context.Context, trackPath string) (*TrackTags, error)
}

// TagReaderImpl reads MP3 and FLAC tags.
type TagReaderImpl struct{}

// NewTagReader creates a new TagReader instance.
func NewTagReader() TagReader {
	return new(TagReaderImpl)
}

// ReadTags reads artist, title and album from the file.
func (tr *TagReaderImpl) ReadTags(ctx context.Context, trackPath string) (*TrackTags, error) {
	if trackPath == "" {
		return nil, ErrEmptyTrackPath
	}

	switch strings.ToLower(filepath.Ext(trackPath)) {
	case constants.ExtensionMP3:
		return tr.readMP3Tags(ctx, trackPath)
	case constants.ExtensionFLAC:
		return tr.readFLACTags(ctx, trackPath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, trackPath)
	}
}

func (tr *TagReaderImpl) readMP3Tags(ctx context.Context, trackPath string) (*TrackTags, error) {
	//nolint:exhaustruct // ParseFrames left empty to parse every frame.
	tag, err := id3v2.Open(filepath.Clean(trackPath), id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}

	defer tag.Close()

	logger.Debugf(ctx, "Read ID3v2.%d tag from %s", tag.Version(), trackPath)

	return &TrackTags{
		Artist: strings.TrimSpace(tag.Artist()),
		Title:  strings.TrimSpace(tag.Title()),
		Album:  strings.TrimSpace(tag.Album()),
	}, nil
}

func (tr *TagReaderImpl) readFLACTags(ctx context.Context, trackPath string) (*TrackTags, error) {
	commentResult, err := extractFLACComment(trackPath)
	if err != nil {
		return nil, err
	}

	result := new(TrackTags)

	if commentResult.Comment == nil {
		logger.Debugf(ctx, "No vorbis comment in %s", trackPath)

		return result, nil
	}

	result.Artist = firstVorbisValue(commentResult.Comment, flacvorbis.FIELD_ARTIST)
	result.Title = firstVorbisValue(commentResult.Comment, flacvorbis.FIELD_TITLE)
	result.Album = firstVorbisValue(commentResult.Comment, flacvorbis.FIELD_ALBUM)

	return result, nil
}

// extractFLACCommentResult contains the result of extracting FLAC comment metadata.
type extractFLACCommentResult struct {
	// File is the parsed FLAC file.
	File *flac.File
	// Comment is the FLAC Vorbis comment metadata block.
	Comment *flacvorbis.MetaDataBlockVorbisComment
	// Index is the index of the comment block in the FLAC file metadata (-1 if not found).
	Index int
}

func extractFLACComment(filename string) (*extractFLACCommentResult, error) {
	f, err := flac.ParseFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}

	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		var comment *flacvorbis.MetaDataBlockVorbisComment

		comment, err = flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			return &extractFLACCommentResult{
				File:    f,
				Comment: comment,
				Index:   idx,
			}, nil
		}
	}

	return &extractFLACCommentResult{
		File:    f,
		Comment: nil,
		Index:   -1,
	}, nil
}

func firstVorbisValue(comment *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	values, err := comment.Get(key)
	if err != nil || len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0])
}
