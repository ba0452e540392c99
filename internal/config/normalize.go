package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envLogLevel         = "LRCSYNC_LOG_LEVEL"
	envLogFormat        = "LRCSYNC_LOG_FORMAT"
	envLyricsDir        = "LRCSYNC_LYRICS_DIR"
	envDataDir          = "LRCSYNC_DATA_DIR"
	envRecoveryInterval = "LRCSYNC_RECOVERY_INTERVAL_MS"
)

func (c *Config) normalize() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

// applyEnv lets environment variables override file values.
func (c *Config) applyEnv() error {
	if value, ok := lookupEnv(envDataDir); ok {
		c.Paths.DataDir = value
	}
	if value, ok := lookupEnv(envLyricsDir); ok {
		c.Paths.LyricsDir = value
	}
	if value, ok := lookupEnv(envLogLevel); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv(envLogFormat); ok {
		c.Logging.Format = value
	}
	if value, ok := lookupEnv(envRecoveryInterval); ok {
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", envRecoveryInterval, err)
		}
		c.Sync.RecoveryIntervalMs = ms
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LyricsDir) == "" {
		c.Paths.LyricsDir = defaultLyricsDir
	}
	if c.Paths.LyricsDir, err = expandPath(c.Paths.LyricsDir); err != nil {
		return fmt.Errorf("paths.lyrics_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
