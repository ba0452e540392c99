// Package main hosts the lrcsync CLI entrypoint and command graph.
//
// The Cobra command tree parses and inspects LRC files, resolves the active
// line for a playback position, plays a document against a simulated clock
// with auto-scroll and manual-scroll recovery, manages the SQLite lyrics
// library, and scaffolds configuration. Behaviour lives in the internal
// packages; commands here only wire configuration, logging, and output.
package main
