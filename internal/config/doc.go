// Package config loads, normalizes, and validates lrcsync configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// LRCSYNC_LOG_LEVEL. A .env file in the working directory is loaded first so
// overrides can live next to a project. The Config type centralizes every knob
// the CLI and the sync engine need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
