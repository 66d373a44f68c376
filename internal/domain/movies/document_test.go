package movies

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDocument(t *testing.T, raw string) Document {
	t.Helper()
	var d Document
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

func TestDocumentMovieToleratesMissingKeys(t *testing.T) {
	m := decodeDocument(t, `{"title": "Solaris"}`).Movie()

	assert.Equal(t, "Solaris", m.Title)
	assert.Zero(t, m.Year)
	assert.Empty(t, m.Director)
	assert.Nil(t, m.ImageURL)
}

func TestDocumentMovieReadsNumericStrings(t *testing.T) {
	m := decodeDocument(t, `{
		"title": "Heat", "director": "Michael Mann", "year": "1995",
		"duration": 170.0, "rating": "8.3", "image_url": null
	}`).Movie()

	assert.Equal(t, 1995, m.Year)
	assert.Equal(t, 170, m.Duration)
	assert.Equal(t, 8.3, m.Rating)
	assert.Nil(t, m.ImageURL)
}

func TestDocumentMovieIgnoresUnreadableNumbers(t *testing.T) {
	m := decodeDocument(t, `{"title": "Heat", "year": "soon", "rating": true}`).Movie()

	assert.Equal(t, "Heat", m.Title)
	assert.Zero(t, m.Year)
	assert.Zero(t, m.Rating)
}

func TestDocumentRoundTripKeepsKeysAndOrder(t *testing.T) {
	in := `{"year":"1995","title":"Heat","country":"US","image_url":null,"rating":8.50}`
	d := decodeDocument(t, in)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestDocumentRepeatedKeyKeepsLastValue(t *testing.T) {
	d := decodeDocument(t, `{"title": "A", "year": 1, "title": "B"}`)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "B", d.Text("title"))
	assert.Equal(t, "title", d.Fields()[0].Key)
}

func TestDocumentRejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`42`, `"movie"`, `null`, `[]`} {
		var d Document
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestDocumentSetReplacesInPlace(t *testing.T) {
	var d Document
	d.Set("title", "Tom & Jerry")
	d.Set("year", 1940)
	d.Set("title", "Tom and Jerry")

	require.Equal(t, 2, d.Len())
	assert.Equal(t, "title", d.Fields()[0].Key)
	assert.Equal(t, "Tom and Jerry", d.Text("title"))
	assert.Equal(t, "1940", d.Text("year"))
}

func TestDocumentTextForms(t *testing.T) {
	d := decodeDocument(t, `{"s": "x", "n": 8.5, "b": false, "z": null}`)

	assert.Equal(t, "x", d.Text("s"))
	assert.Equal(t, "8.5", d.Text("n"))
	assert.Equal(t, "false", d.Text("b"))
	assert.Equal(t, "", d.Text("z"))
	assert.Equal(t, "", d.Text("missing"))
	assert.Nil(t, d.OptionalText("z"))
}
