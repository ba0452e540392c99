package lyricsource

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound reports that a provider has no lyrics for a track.
var ErrNotFound = errors.New("lyrics not found")

// Provider returns the LRC text for a track.
type Provider interface {
	Lyrics(ctx context.Context, trackID string) (string, error)
}

// Func adapts a function to Provider.
type Func func(ctx context.Context, trackID string) (string, error)

// Lyrics calls f.
func (f Func) Lyrics(ctx context.Context, trackID string) (string, error) {
	return f(ctx, trackID)
}

// Chain tries providers in order and returns the first result that is not
// ErrNotFound. Nil entries are skipped.
type Chain []Provider

// Lyrics implements Provider.
func (c Chain) Lyrics(ctx context.Context, trackID string) (string, error) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := p.Lyrics(ctx, trackID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return text, err
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
}
