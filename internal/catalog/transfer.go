package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"movie-catalog/internal/domain/movies"
)

// ExportFilename is the attachment name offered for bulk exports.
const ExportFilename = "all_movies.json"

type ImportSummary struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
}

// Import decodes a JSON array of movie objects from r and saves each one to
// target. The whole document is decoded before anything is written, so a
// malformed document leaves every store untouched.
//
// Relational duplicates are skipped and counted; flat-file targets append
// every object.
func (s *Service) Import(ctx context.Context, r io.Reader, target movies.Target) (ImportSummary, error) {
	var sum ImportSummary

	b, err := s.backend(target)
	if err != nil {
		return sum, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return sum, fmt.Errorf("read import document: %w", err)
	}

	var docs []movies.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return sum, &movies.MalformedDocumentError{Err: err}
	}

	for _, d := range docs {
		err := b.Save(ctx, d)
		switch {
		case err == nil:
			sum.Added++
		case errors.Is(err, movies.ErrDuplicate):
			sum.Duplicates++
		default:
			return sum, err
		}
	}

	s.log.Info().
		Str("target", target.String()).
		Int("added", sum.Added).
		Int("duplicates", sum.Duplicates).
		Msg("import finished")
	return sum, nil
}

// Export renders every relational movie as a pretty-printed JSON array.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	all, err := s.relational.All(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]movies.Document, 0, len(all))
	for _, m := range all {
		docs = append(docs, m.Document())
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
