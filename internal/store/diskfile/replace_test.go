package diskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceCreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies_data.json")

	require.NoError(t, Replace(path, []byte("[]\n")))
	require.NoError(t, Replace(path, []byte("[1]\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "movies_data.json", entries[0].Name())
}

func TestReplaceMissingDirectory(t *testing.T) {
	err := Replace(filepath.Join(t.TempDir(), "nope", "movies.xml"), []byte("x"))
	assert.Error(t, err)
}
