// Package lyricsource locates raw LRC text for a track.
//
// Providers look lyrics up by track ID. Dir reads sidecar .lrc files, Tags
// reads lyrics embedded in audio files, and Chain tries several providers in
// order. Every provider reports a miss with ErrNotFound so callers can fall
// through to the next source.
package lyricsource
