// Package playback supplies a playback clock and the loop that keeps a sync
// session up to date with it.
//
// Simulated is a wall-clock based position source with start, pause, seek,
// and speed controls. Driver owns the tick and recovery tickers and feeds
// ticks, recovery checks, and manual-scroll reports into a
// syncsession.Session from a single goroutine, so the session never sees
// concurrent calls.
package playback
