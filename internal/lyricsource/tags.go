package lyricsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// AudioInfo is the subset of embedded audio tags lrcsync uses.
type AudioInfo struct {
	Title  string
	Artist string
	Album  string
	Lyrics string
}

// ReadAudioInfo reads embedded tags from the audio file at path.
func ReadAudioInfo(path string) (AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("read tags %s: %w", path, err)
	}
	return AudioInfo{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
		Lyrics: m.Lyrics(),
	}, nil
}

// Tags treats the track ID as an audio file path and returns its embedded
// lyrics. Files without tags or without a lyrics frame are reported as
// ErrNotFound.
type Tags struct{}

// Lyrics implements Provider.
func (Tags) Lyrics(ctx context.Context, trackID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := ReadAudioInfo(trackID)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, tag.ErrNoTagsFound):
		return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
	case err != nil:
		return "", err
	}
	if strings.TrimSpace(info.Lyrics) == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
	}
	return info.Lyrics, nil
}
