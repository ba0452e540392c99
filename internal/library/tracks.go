package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lrcsync/internal/lyrics"
	"lrcsync/internal/lyricsource"
)

// ErrNotFound is returned when a track ID is not in the library. It matches
// lyricsource.ErrNotFound so chained providers fall through.
var ErrNotFound = fmt.Errorf("library: %w", lyricsource.ErrNotFound)

// ErrMissingFields is returned when a track lacks a title or artist.
var ErrMissingFields = errors.New("library: title and artist are required")

// Track is a library entry.
type Track struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album,omitempty"`
	AudioPath string    `json:"audio_path,omitempty"`
	LRC       string    `json:"-"`
	LineCount int       `json:"line_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLyrics reports whether the track has synchronized lines.
func (t *Track) HasLyrics() bool {
	return t.LineCount > 0
}

const trackColumns = "id, title, artist, album, audio_path, lrc, line_count, created_at, updated_at"

// Add inserts a track, assigning a new ID when none is set. Missing title,
// artist, or album are taken from the LRC ID tags when available.
func (s *Store) Add(ctx context.Context, track Track) (*Track, error) {
	doc := lyrics.ParseString(track.LRC)
	meta := doc.Metadata()
	track.Title = firstNonEmpty(track.Title, meta.Title)
	track.Artist = firstNonEmpty(track.Artist, meta.Artist)
	track.Album = firstNonEmpty(track.Album, meta.Album)
	if track.Title == "" || track.Artist == "" {
		return nil, ErrMissingFields
	}
	if strings.TrimSpace(track.ID) == "" {
		track.ID = uuid.NewString()
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.exec(ctx,
		`INSERT INTO tracks (`+trackColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		track.ID,
		track.Title,
		track.Artist,
		nullableString(track.Album),
		nullableString(track.AudioPath),
		nullableString(track.LRC),
		doc.Len(),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert track: %w", err)
	}
	return s.Get(ctx, track.ID)
}

// Get returns the track with id.
func (s *Store) Get(ctx context.Context, id string) (*Track, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trackColumns+" FROM tracks WHERE id = ?", id)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return track, nil
}

// List returns all tracks ordered by artist then title.
func (s *Store) List(ctx context.Context) ([]*Track, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+trackColumns+" FROM tracks ORDER BY artist COLLATE NOCASE, title COLLATE NOCASE, created_at")
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// SetLyrics replaces the LRC text of a track.
func (s *Store) SetLyrics(ctx context.Context, id, lrc string) error {
	doc := lyrics.ParseString(lrc)
	res, err := s.exec(ctx,
		"UPDATE tracks SET lrc = ?, line_count = ?, updated_at = ? WHERE id = ?",
		nullableString(lrc),
		doc.Len(),
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return fmt.Errorf("update lyrics: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Remove deletes a track. It reports whether a row was removed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.exec(ctx, "DELETE FROM tracks WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("remove track: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// Lyrics returns the stored LRC text for trackID.
func (s *Store) Lyrics(ctx context.Context, trackID string) (string, error) {
	var lrc sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT lrc FROM tracks WHERE id = ?", trackID).Scan(&lrc)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !lrc.Valid) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, trackID)
	}
	if err != nil {
		return "", fmt.Errorf("read lyrics: %w", err)
	}
	return lrc.String, nil
}

func scanTrack(scanner interface{ Scan(dest ...any) error }) (*Track, error) {
	var (
		track      Track
		album      sql.NullString
		audioPath  sql.NullString
		lrc        sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&track.ID,
		&track.Title,
		&track.Artist,
		&album,
		&audioPath,
		&lrc,
		&track.LineCount,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	track.Album = album.String
	track.AudioPath = audioPath.String
	track.LRC = lrc.String
	track.CreatedAt = parseTime(createdRaw)
	track.UpdatedAt = parseTime(updatedRaw)
	return &track, nil
}

func parseTime(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
