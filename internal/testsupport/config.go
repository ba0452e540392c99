package testsupport

import (
	"path/filepath"
	"testing"

	"lrcsync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LyricsDir = filepath.Join(base, "lyrics")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRecoveryInterval overrides the manual-scroll recovery interval.
func WithRecoveryInterval(ms int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.RecoveryIntervalMs = ms
	}
}

// WithTickInterval overrides the playback tick interval.
func WithTickInterval(ms int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.TickIntervalMs = ms
	}
}

// WithHonorOffset enables the [offset:] tag.
func WithHonorOffset() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.HonorOffset = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
