package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked is returned when another process holds the import lock and ctx
// ends before it is released.
var ErrLocked = errors.New("library: import lock held by another process")

// WithImportLock runs fn while holding an exclusive file lock in dataDir, so
// bulk imports from concurrent CLI invocations do not interleave.
func WithImportLock(ctx context.Context, dataDir string, fn func() error) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	lock := flock.New(filepath.Join(dataDir, "library.lock"))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrLocked, err)
		}
		return fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
