package xmlfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movie-catalog/internal/domain/movies"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "movies_data.xml"), zerolog.Nop())
}

func titled(title string) movies.Document {
	var d movies.Document
	d.Set("title", title)
	return d
}

func TestSaveCreatesRoot(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	var d movies.Document
	d.Set("title", "Ivan's Childhood")
	d.Set("director", "Andrei Tarkovsky")
	d.Set("year", 1962)
	d.Set("rating", 8.0)
	require.NoError(t, s.Save(ctx, d))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, "<movies>")
	assert.Contains(t, text, "<movie>")
	assert.Contains(t, text, "<title>Ivan&#39;s Childhood</title>")
	assert.Contains(t, text, "<year>1962</year>")
	assert.Contains(t, text, "<rating>8</rating>")
	assert.NotContains(t, text, "<image_url>")
}

func TestSaveAppendsChildren(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, title := range []string{"Andrei Rublev", "Андрей Рублёв", "Andrei Rublev"} {
		require.NoError(t, s.Save(ctx, titled(title)))
	}

	docs, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Андрей Рублёв", docs[1].Text("title"))
}

func TestMalformedFileGetsNewRoot(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(s.Path(), []byte("<movies><movie>"), 0o644))

	docs, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, s.Save(ctx, titled("The Sacrifice")))

	docs, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "The Sacrifice", docs[0].Text("title"))
}

func TestWrongRootElementIsReplaced(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(s.Path(), []byte("<films><film/></films>"), 0o644))

	require.NoError(t, s.Save(ctx, titled("Solaris")))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "<films>")
	assert.Contains(t, string(raw), "<movies>")
}

func TestSaveKeepsUnknownElements(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	existing := `<?xml version="1.0" encoding="UTF-8"?>
<movies>
  <movie>
    <title>Old</title>
    <year>nineteen ninety-nine</year>
    <country>RU</country>
  </movie>
</movies>`
	require.NoError(t, os.WriteFile(s.Path(), []byte(existing), 0o644))

	require.NoError(t, s.Save(ctx, titled("New")))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "<year>nineteen ninety-nine</year>")
	assert.Contains(t, text, "<country>RU</country>")

	docs, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Old", docs[0].Text("title"))
	assert.Equal(t, "RU", docs[0].Text("country"))
	assert.Equal(t, "New", docs[1].Text("title"))
}

func TestSaveWritesImportedValuesAsText(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	var d movies.Document
	require.NoError(t, json.Unmarshal(
		[]byte(`{"title": "Heat", "year": "1995", "image_url": null, "bad key": 1}`), &d))
	require.NoError(t, s.Save(ctx, d))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "<year>1995</year>")
	assert.Contains(t, text, "<image_url></image_url>")
	assert.NotContains(t, text, "bad key")
}
