// Package logging assembles structured slog loggers used across lrcsync.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standard attribute keys so session, library, and
// CLI code emit log lines with the same shape. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
package logging
