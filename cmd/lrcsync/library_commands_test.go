package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"lrcsync/internal/library"
	"lrcsync/internal/testsupport"
)

func listTracks(t *testing.T, env *cliTestEnv) []library.Track {
	t.Helper()
	out, _, err := runCLI(t, []string{"library", "list", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library list --json: %v", err)
	}
	var tracks []library.Track
	if err := json.Unmarshal([]byte(out), &tracks); err != nil {
		t.Fatalf("decode tracks: %v\n%s", err, out)
	}
	return tracks
}

func TestLibraryAddListShowRemove(t *testing.T) {
	env := setupCLITestEnv(t)
	lrc := writeSample(t, env)

	out, _, err := runCLI(t, []string{"library", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library list: %v", err)
	}
	requireContains(t, out, "Library is empty")

	out, _, err = runCLI(t, []string{"library", "add", "--lrc", lrc, "--album", "Demo"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library add: %v", err)
	}
	requireContains(t, out, "Added Test Artist - Test Song (3 lines)")

	tracks := listTracks(t, env)
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	id := tracks[0].ID

	out, _, err = runCLI(t, []string{"library", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library list: %v", err)
	}
	requireContains(t, out, "Test Song")

	out, _, err = runCLI(t, []string{"library", "show", id}, env.configPath, "")
	if err != nil {
		t.Fatalf("library show: %v", err)
	}
	requireContains(t, out, "Album:    Demo")
	requireContains(t, out, "Lines:    3")

	out, _, err = runCLI(t, []string{"resolve", "--track", id, "--at", "2500"}, env.configPath, "")
	if err != nil {
		t.Fatalf("resolve --track: %v", err)
	}
	requireContains(t, out, "line 1 [00:02.00] second")

	out, _, err = runCLI(t, []string{"library", "remove", id, "missing-id"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library remove: %v", err)
	}
	requireContains(t, out, "Removed "+id)
	requireContains(t, out, "Track missing-id not found")

	if _, _, err := runCLI(t, []string{"library", "show", id}, env.configPath, ""); err == nil {
		t.Fatal("expected show of removed track to fail")
	}
}

func TestLibraryAddRequiresArtist(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"library", "add", "--title", "Only Title"}, env.configPath, ""); err == nil {
		t.Fatal("expected error without artist")
	}
}

func TestLibraryImportDir(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := env.cfg.Paths.LyricsDir
	testsupport.WriteLRC(t, dir, "a.lrc", "[ti:Alpha]", "[ar:Band]", "[00:01.00]one")
	testsupport.WriteLRC(t, dir, "b.lrc", "[00:02.00]two")
	testsupport.WriteLRC(t, dir, "c.lrc", "nothing timed")

	out, _, err := runCLI(t, []string{"library", "import-dir"}, env.configPath, "")
	if err != nil {
		t.Fatalf("library import-dir: %v", err)
	}
	requireContains(t, out, "Imported Band - Alpha (1 lines)")
	requireContains(t, out, "Imported Unknown Artist - b (1 lines)")
	requireContains(t, out, "Skipped "+filepath.Join(dir, "c.lrc"))

	if got := len(listTracks(t, env)); got != 2 {
		t.Fatalf("expected 2 tracks, got %d", got)
	}
}

func TestPlayFromLibraryTrack(t *testing.T) {
	env := setupCLITestEnv(t)
	store := testsupport.MustOpenLibrary(t, env.cfg)
	track := testsupport.AddTrack(t, store, "Song", "Band", "[00:00.00]only line")
	store.Close()

	out, _, err := runCLI(t, []string{"play", "--track", track.ID, "--until", "100", "--speed", "10"}, env.configPath, "")
	if err != nil {
		t.Fatalf("play --track: %v", err)
	}
	requireContains(t, out, "[00:00.00] only line")
}
