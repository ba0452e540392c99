package lyricsource_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lrcsync/internal/lyricsource"
)

func TestDirLyrics(t *testing.T) {
	root := t.TempDir()
	dir := lyricsource.Dir{Root: root}
	if _, err := dir.Store("Artist - Song", "[00:01.00]hi"); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := dir.Lyrics(context.Background(), "Artist - Song")
	if err != nil {
		t.Fatalf("Lyrics: %v", err)
	}
	if got != "[00:01.00]hi" {
		t.Fatalf("unexpected lyrics %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "Artist - Song.lrc")); err != nil {
		t.Fatalf("expected sidecar file: %v", err)
	}
}

func TestDirSanitizesTrackID(t *testing.T) {
	dir := lyricsource.Dir{Root: t.TempDir()}
	path := dir.Path("AC/DC: Thunder?")
	if filepath.Base(path) != "AC-DC- Thunder.lrc" {
		t.Fatalf("unexpected path %q", path)
	}
	if filepath.Dir(path) != dir.Root {
		t.Fatalf("path escaped root: %q", path)
	}
}

func TestDirFallsBackToTokenName(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "my_song.lrc"), []byte("[00:02.00]x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := lyricsource.Dir{Root: root}.Lyrics(context.Background(), "My Song")
	if err != nil {
		t.Fatalf("Lyrics: %v", err)
	}
	if got != "[00:02.00]x" {
		t.Fatalf("unexpected lyrics %q", got)
	}
}

func TestDirMissing(t *testing.T) {
	tests := []struct {
		name string
		dir  lyricsource.Dir
		id   string
	}{
		{name: "missing file", dir: lyricsource.Dir{Root: t.TempDir()}, id: "nope"},
		{name: "empty root", dir: lyricsource.Dir{}, id: "song"},
		{name: "empty id", dir: lyricsource.Dir{Root: t.TempDir()}, id: "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.dir.Lyrics(context.Background(), tt.id)
			if !errors.Is(err, lyricsource.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestChain(t *testing.T) {
	boom := errors.New("boom")
	miss := lyricsource.Func(func(context.Context, string) (string, error) {
		return "", lyricsource.ErrNotFound
	})
	hit := lyricsource.Func(func(_ context.Context, id string) (string, error) {
		return "lyrics for " + id, nil
	})
	fail := lyricsource.Func(func(context.Context, string) (string, error) {
		return "", boom
	})

	got, err := lyricsource.Chain{nil, miss, hit, fail}.Lyrics(context.Background(), "a")
	if err != nil || got != "lyrics for a" {
		t.Fatalf("expected first hit, got %q, %v", got, err)
	}

	if _, err := (lyricsource.Chain{miss, fail, hit}).Lyrics(context.Background(), "a"); !errors.Is(err, boom) {
		t.Fatalf("expected provider error to stop the chain, got %v", err)
	}

	if _, err := (lyricsource.Chain{miss, miss}).Lyrics(context.Background(), "a"); !errors.Is(err, lyricsource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChainHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	p := lyricsource.Func(func(context.Context, string) (string, error) {
		called = true
		return "x", nil
	})
	if _, err := (lyricsource.Chain{p}).Lyrics(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatal("provider should not run after cancellation")
	}
}

func TestTagsMissingFile(t *testing.T) {
	_, err := lyricsource.Tags{}.Lyrics(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, lyricsource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTagsUntaggedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	if err := os.WriteFile(path, []byte(strings.Repeat("not audio ", 40)), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := lyricsource.Tags{}.Lyrics(context.Background(), path)
	if !errors.Is(err, lyricsource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// id3v1 builds a minimal file ending in an ID3v1 tag block.
func id3v1(title, artist, album string) []byte {
	field := func(value string, size int) []byte {
		b := make([]byte, size)
		copy(b, value)
		return b
	}
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0}, 256))
	buf.WriteString("TAG")
	buf.Write(field(title, 30))
	buf.Write(field(artist, 30))
	buf.Write(field(album, 30))
	buf.Write(field("2001", 4))
	buf.Write(field("", 30))
	buf.WriteByte(0)
	return buf.Bytes()
}

func TestReadAudioInfoID3v1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, id3v1("Song", "Band", "Record"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := lyricsource.ReadAudioInfo(path)
	if err != nil {
		t.Fatalf("ReadAudioInfo: %v", err)
	}
	if info.Title != "Song" || info.Artist != "Band" || info.Album != "Record" {
		t.Fatalf("unexpected info %+v", info)
	}

	// ID3v1 has no lyrics frame.
	if _, err := (lyricsource.Tags{}).Lyrics(context.Background(), path); !errors.Is(err, lyricsource.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
