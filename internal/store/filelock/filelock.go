// Package filelock guards flat-file read-modify-write cycles with an
// advisory lock on a sibling ".lock" file.
package filelock

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const retryDelay = 25 * time.Millisecond

// Exclusive blocks until the writer lock for path is held or ctx is done.
// The returned func releases it.
func Exclusive(ctx context.Context, path string) (func() error, error) {
	fl := flock.New(path + ".lock")
	ok, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: not acquired", path)
	}
	return fl.Unlock, nil
}

// Shared blocks until a reader lock for path is held or ctx is done.
func Shared(ctx context.Context, path string) (func() error, error) {
	fl := flock.New(path + ".lock")
	ok, err := fl.TryRLockContext(ctx, retryDelay)
	if err != nil {
		return nil, fmt.Errorf("rlock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("rlock %s: not acquired", path)
	}
	return fl.Unlock, nil
}
