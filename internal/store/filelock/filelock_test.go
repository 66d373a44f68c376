package filelock

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveTimesOutWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies_data.json")

	unlock, err := Exclusive(context.Background(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = Exclusive(ctx, path)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = Shared(ctx, path)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock())

	again, err := Exclusive(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, again())
}

func TestSharedLocksCoexist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies_data.xml")

	first, err := Shared(context.Background(), path)
	require.NoError(t, err)
	defer first()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	second, err := Shared(ctx, path)
	require.NoError(t, err)
	require.NoError(t, second())
}
