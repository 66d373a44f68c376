package movies

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field is one key of a Document with its value kept as raw JSON.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Document is a movie object as it appears in the flat files and in bulk
// import/export documents. Keys keep their order and their values are kept
// exactly as read, including keys the catalog does not know about. Typed
// access goes through the lenient accessors below.
type Document struct {
	fields []Field
}

var errNotObject = errors.New("movie entry must be a JSON object")

func (d Document) Fields() []Field { return d.fields }

func (d Document) Len() int { return len(d.fields) }

func (d Document) Has(key string) bool {
	_, ok := d.value(key)
	return ok
}

// Set replaces key in place or appends it.
func (d *Document) Set(key string, v any) {
	raw, err := encode(v)
	if err != nil {
		raw = json.RawMessage("null")
	}
	for i := range d.fields {
		if d.fields[i].Key == key {
			d.fields[i].Value = raw
			return
		}
	}
	d.fields = append(d.fields, Field{Key: key, Value: raw})
}

func (d Document) value(key string) (json.RawMessage, bool) {
	for _, f := range d.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Text returns the value of key in string form. Strings are unquoted,
// numbers and booleans keep their literal text, null and absent keys give "".
func (d Document) Text(key string) string {
	raw, ok := d.value(key)
	if !ok {
		return ""
	}
	return rawText(raw)
}

// OptionalText is Text with absent, null and empty values reported as nil.
func (d Document) OptionalText(key string) *string {
	s := d.Text(key)
	if s == "" {
		return nil
	}
	return &s
}

// Float reads key as a number. Numeric strings such as "8.5" are accepted.
func (d Document) Float(key string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(d.Text(key)), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int reads key as a whole number, truncating fractions.
func (d Document) Int(key string) (int, bool) {
	f, ok := d.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Movie converts the document into a relational row. Missing or unreadable
// values become zero values; created_at is never taken from the document.
func (d Document) Movie() Movie {
	m := Movie{
		Title:       d.Text("title"),
		Director:    d.Text("director"),
		Genre:       d.Text("genre"),
		Description: d.Text("description"),
		Cast:        d.Text("cast"),
		ImageURL:    d.OptionalText("image_url"),
	}
	m.Year, _ = d.Int("year")
	m.Duration, _ = d.Int("duration")
	m.Rating, _ = d.Float("rating")
	return m
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts any JSON object. A repeated key keeps its first
// position and its last value.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}

	var out Document
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out.setRaw(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

func (d *Document) setRaw(key string, raw json.RawMessage) {
	for i := range d.fields {
		if d.fields[i].Key == key {
			d.fields[i].Value = raw
			return
		}
	}
	d.fields = append(d.fields, Field{Key: key, Value: raw})
}

// encode marshals v without HTML escaping so text stays as submitted.
func encode(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n':
		return ""
	}
	return string(raw)
}
