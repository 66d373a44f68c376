// Package jsonfile stores movies as a single JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"movie-catalog/internal/domain/movies"
	"movie-catalog/internal/store/diskfile"
	"movie-catalog/internal/store/filelock"

	"github.com/rs/zerolog"
)

type Store struct {
	path string
	log  zerolog.Logger
}

func Open(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With().Str("store", "json").Str("path", path).Logger(),
	}
}

func (s *Store) Path() string { return s.path }

// Load returns every object in the file. A missing or malformed file reads
// as an empty corpus and array entries that are not objects are skipped;
// only lock failures are returned as errors.
func (s *Store) Load(ctx context.Context) ([]movies.Document, error) {
	unlock, err := filelock.Shared(ctx, s.path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	entries := s.load()
	docs := make([]movies.Document, 0, len(entries))
	for i, raw := range entries {
		var d movies.Document
		if err := json.Unmarshal(raw, &d); err != nil {
			s.log.Warn().Err(err).Int("index", i).Msg("skipping unreadable entry")
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Save appends doc and rewrites the whole file. Existing entries are written
// back as they were read. No duplicate check is made.
func (s *Store) Save(ctx context.Context, doc movies.Document) error {
	unlock, err := filelock.Exclusive(ctx, s.path)
	if err != nil {
		return err
	}
	defer unlock()

	raw, err := encodeEntry(doc)
	if err != nil {
		return fmt.Errorf("encode movie: %w", err)
	}
	return s.write(append(s.load(), raw))
}

// load reads the top-level array keeping each entry undecoded.
func (s *Store) load() []json.RawMessage {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Msg(movies.ErrFileUnavailable.Error())
		}
		return []json.RawMessage{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn().Err(err).Msg("malformed json file, treating as empty")
		return []json.RawMessage{}
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries
}

func encodeEntry(doc movies.Document) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (s *Store) write(entries []json.RawMessage) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	return diskfile.Replace(s.path, buf.Bytes())
}
