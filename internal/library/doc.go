// Package library persists tracks and their LRC lyrics in SQLite.
//
// The Store is the persisted lyrics-text provider: it implements
// lyricsource.Provider so a sync session can be started from a track ID. It
// manages the database connection, schema initialization, and busy retries,
// and records basic statistics (line count) for each stored document.
//
// Schema changes bump the version in schema.go; users delete library.db to
// adopt the new schema.
package library
