package library_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lrcsync/internal/library"
	"lrcsync/internal/lyricsource"
	"lrcsync/internal/testsupport"
)

func TestOpenCreatesDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	if store.Path() != filepath.Join(cfg.Paths.DataDir, "library.db") {
		t.Fatalf("unexpected path %q", store.Path())
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("expected database file: %v", err)
	}

	tracks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tracks) != 0 {
		t.Fatalf("expected empty library, got %d tracks", len(tracks))
	}
}

func TestReopenKeepsTracks(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	track := testsupport.AddTrack(t, store, "Song", "Band", testsupport.SampleLRC)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenLibrary(t, cfg)
	got, err := reopened.Get(context.Background(), track.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Title != "Song" {
		t.Fatalf("unexpected track %#v", got)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()

	db, err := sql.Open("sqlite", cfg.LibraryPath())
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	if _, err := library.Open(cfg); !errors.Is(err, library.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestAddUsesLRCMetadata(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	track, err := store.Add(context.Background(), library.Track{LRC: testsupport.SampleLRC})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if track.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if track.Title != "Test Song" || track.Artist != "Test Artist" {
		t.Fatalf("expected title and artist from tags, got %q / %q", track.Title, track.Artist)
	}
	if track.LineCount != 3 || !track.HasLyrics() {
		t.Fatalf("expected 3 lines, got %d", track.LineCount)
	}
	if track.CreatedAt.IsZero() || track.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps, got %#v", track)
	}
}

func TestAddExplicitFieldsWin(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	track := testsupport.AddTrack(t, store, "Other", "Someone", testsupport.SampleLRC)
	if track.Title != "Other" || track.Artist != "Someone" {
		t.Fatalf("explicit fields overwritten: %#v", track)
	}
}

func TestAddRequiresTitleAndArtist(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	_, err := store.Add(context.Background(), library.Track{Title: "No Artist", LRC: "[00:01.00]x"})
	if !errors.Is(err, library.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestListOrdersByArtistThenTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	testsupport.AddTrack(t, store, "b", "zed", "")
	testsupport.AddTrack(t, store, "B", "Alpha", "")
	testsupport.AddTrack(t, store, "a", "alpha", "")

	tracks, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var got []string
	for _, tr := range tracks {
		got = append(got, tr.Artist+"/"+tr.Title)
	}
	want := []string{"alpha/a", "Alpha/B", "zed/b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLyricsProvider(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	var provider lyricsource.Provider = store
	track := testsupport.AddTrack(t, store, "Song", "Band", testsupport.SampleLRC)

	text, err := provider.Lyrics(ctx, track.ID)
	if err != nil {
		t.Fatalf("Lyrics failed: %v", err)
	}
	if text != testsupport.SampleLRC {
		t.Fatalf("unexpected lyrics %q", text)
	}

	if _, err := provider.Lyrics(ctx, "missing"); !errors.Is(err, lyricsource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing track, got %v", err)
	}

	bare := testsupport.AddTrack(t, store, "Instrumental", "Band", "")
	if _, err := provider.Lyrics(ctx, bare.ID); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for track without lyrics, got %v", err)
	}
}

func TestSetLyrics(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "Song", "Band", "")
	if track.HasLyrics() {
		t.Fatal("expected no lyrics")
	}
	if err := store.SetLyrics(ctx, track.ID, "[00:01.00]a\n[00:02.00]b"); err != nil {
		t.Fatalf("SetLyrics failed: %v", err)
	}
	got, err := store.Get(ctx, track.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.LineCount != 2 {
		t.Fatalf("expected 2 lines, got %d", got.LineCount)
	}

	if err := store.SetLyrics(ctx, "missing", "x"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	track := testsupport.AddTrack(t, store, "Song", "Band", "")
	removed, err := store.Remove(ctx, track.ID)
	if err != nil || !removed {
		t.Fatalf("Remove = %v, %v", removed, err)
	}
	removed, err = store.Remove(ctx, track.ID)
	if err != nil || removed {
		t.Fatalf("second Remove = %v, %v", removed, err)
	}
	if _, err := store.Get(ctx, track.ID); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImportDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	dir := cfg.Paths.LyricsDir

	testsupport.WriteLRC(t, dir, "tagged.lrc", "[ti:Tagged]", "[ar:Singer]", "[00:01.00]one")
	testsupport.WriteLRC(t, dir, "Plain Name.LRC", "[00:03.00]three")
	testsupport.WriteLRC(t, dir, "empty.lrc", "[ti:Nothing]", "no timestamps here")
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), "[00:01.00]ignored")

	result, err := store.ImportDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("ImportDir failed: %v", err)
	}
	if len(result.Added) != 2 {
		t.Fatalf("expected 2 imported tracks, got %d", len(result.Added))
	}
	if len(result.Skipped) != 1 || filepath.Base(result.Skipped[0]) != "empty.lrc" {
		t.Fatalf("unexpected skipped files %v", result.Skipped)
	}

	byTitle := map[string]*library.Track{}
	for _, tr := range result.Added {
		byTitle[tr.Title] = tr
	}
	if tr := byTitle["Tagged"]; tr == nil || tr.Artist != "Singer" {
		t.Fatalf("expected tagged track, got %#v", byTitle)
	}
	if tr := byTitle["Plain Name"]; tr == nil || tr.Artist != "Unknown Artist" {
		t.Fatalf("expected filename fallback, got %#v", byTitle)
	}
}
