package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lrcsync/internal/lyrics"
)

const unknownArtist = "Unknown Artist"

// ImportResult summarizes an ImportDir run.
type ImportResult struct {
	Added   []*Track
	Skipped []string
}

// ImportDir adds every .lrc file in dir as a track. Title and artist come from
// the file's ID tags, falling back to the file name and "Unknown Artist".
// Files without any timestamped line are skipped.
func (s *Store) ImportDir(ctx context.Context, dir string) (*ImportResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read lyrics dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".lrc") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	result := &ImportResult{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return result, fmt.Errorf("read %s: %w", path, err)
		}
		lrc := string(data)
		if lyrics.ParseString(lrc).Empty() {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		track, err := s.Add(ctx, Track{
			Title:  strings.TrimSuffix(name, filepath.Ext(name)),
			Artist: unknownArtist,
			LRC:    lrc,
		}.preferTags())
		if err != nil {
			return result, err
		}
		result.Added = append(result.Added, track)
	}
	return result, nil
}

// preferTags clears the fallback title and artist when the LRC carries its own
// ID tags so Add picks those up.
func (t Track) preferTags() Track {
	if strings.Contains(t.LRC, "[ti:") {
		t.Title = ""
	}
	if strings.Contains(t.LRC, "[ar:") {
		t.Artist = ""
	}
	return t
}
