package testsupport

import (
	"context"
	"testing"

	"lrcsync/internal/config"
	"lrcsync/internal/library"
)

// MustOpenLibrary opens a library.Store for tests and registers cleanup.
func MustOpenLibrary(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddTrack inserts a track with lrc as its lyrics.
func AddTrack(t testing.TB, store *library.Store, title, artist, lrc string) *library.Track {
	t.Helper()

	track, err := store.Add(context.Background(), library.Track{Title: title, Artist: artist, LRC: lrc})
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return track
}
