package scroll

import (
	"errors"
	"time"
)

// DefaultRecoveryInterval is the quiet period after a manual scroll before
// auto-scroll resumes.
const DefaultRecoveryInterval = time.Second

// Config tunes the Controller.
type Config struct {
	RecoveryInterval time.Duration
}

// DefaultConfig returns the stock controller settings.
func DefaultConfig() Config {
	return Config{RecoveryInterval: DefaultRecoveryInterval}
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if c.RecoveryInterval <= 0 {
		return errors.New("scroll: recovery interval must be positive")
	}
	return nil
}
