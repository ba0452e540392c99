package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lrcsync/internal/config"
	"lrcsync/internal/library"
	"lrcsync/internal/lyrics"
	"lrcsync/internal/lyricsource"
)

// loadDocument reads lyrics either from a file argument or, when trackID is
// set, from the library with the lyrics directory as fallback. Non-.lrc files
// are treated as audio: a sidecar next to the file, then one in the lyrics
// directory, then embedded tags.
func loadDocument(ctx context.Context, cc *commandContext, path, trackID string) (*lyrics.Document, error) {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(trackID) != "" {
		var raw string
		err := cc.withLibrary(func(store *library.Store) error {
			var lookupErr error
			raw, lookupErr = lyricsource.Chain{store, lyricsource.Dir{Root: cfg.Paths.LyricsDir}}.Lyrics(ctx, trackID)
			return lookupErr
		})
		if err != nil {
			return nil, fmt.Errorf("load track %s: %w", trackID, err)
		}
		return lyrics.ParseString(raw), nil
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("a lyrics file or --track is required")
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	if strings.EqualFold(filepath.Ext(expanded), ".lrc") {
		f, err := os.Open(expanded)
		if err != nil {
			return nil, fmt.Errorf("open lyrics: %w", err)
		}
		defer f.Close()
		return lyrics.Parse(f)
	}

	raw, err := audioSource(cfg).Lyrics(ctx, expanded)
	if err != nil {
		return nil, fmt.Errorf("load lyrics for %s: %w", expanded, err)
	}
	return lyrics.ParseString(raw), nil
}

// audioSource looks up lyrics for an audio file path.
func audioSource(cfg *config.Config) lyricsource.Provider {
	stem := func(path string) string {
		return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lyricsource.Chain{
		lyricsource.Func(func(ctx context.Context, path string) (string, error) {
			return lyricsource.Dir{Root: filepath.Dir(path)}.Lyrics(ctx, stem(path))
		}),
		lyricsource.Func(func(ctx context.Context, path string) (string, error) {
			return lyricsource.Dir{Root: cfg.Paths.LyricsDir}.Lyrics(ctx, stem(path))
		}),
		lyricsource.Tags{},
	}
}
