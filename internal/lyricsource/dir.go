package lyricsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lrcsync/internal/textutil"
)

// Dir serves sidecar files named <track id>.lrc from a directory.
type Dir struct {
	Root string
}

// Path returns the preferred sidecar path for trackID.
func (d Dir) Path(trackID string) string {
	return filepath.Join(d.Root, textutil.SanitizeFileName(trackID)+".lrc")
}

// candidates lists the file names tried for trackID, most specific first.
func (d Dir) candidates(trackID string) []string {
	primary := d.Path(trackID)
	token := filepath.Join(d.Root, textutil.SanitizeToken(trackID)+".lrc")
	if token == primary {
		return []string{primary}
	}
	return []string{primary, token}
}

// Lyrics implements Provider.
func (d Dir) Lyrics(ctx context.Context, trackID string) (string, error) {
	if strings.TrimSpace(d.Root) == "" || textutil.SanitizeFileName(trackID) == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
	}
	for _, path := range d.candidates(trackID) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
}

// Store writes lrc as the sidecar for trackID, creating Root if needed.
func (d Dir) Store(trackID, lrc string) (string, error) {
	if textutil.SanitizeFileName(trackID) == "" {
		return "", fmt.Errorf("store lyrics: empty track id")
	}
	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return "", fmt.Errorf("create lyrics dir: %w", err)
	}
	path := d.Path(trackID)
	if err := os.WriteFile(path, []byte(lrc), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
