package catalog

import (
	"context"
	"strings"

	"movie-catalog/internal/domain/movies"
)

// Search lists movies from src, filtered by query when it is non-blank.
// Surrounding whitespace in query is ignored for both sources.
//
// The relational source matches title, director, genre and cast and returns
// the newest first. The file source reads the JSON file and matches title and
// director only, in file order.
func (s *Service) Search(ctx context.Context, query string, src movies.Source) ([]movies.Document, error) {
	query = strings.TrimSpace(query)
	if src == movies.SourceFile {
		return s.searchFile(ctx, query)
	}

	found, err := s.relational.Search(ctx, query, 0)
	if err != nil {
		return nil, err
	}

	out := make([]movies.Document, 0, len(found))
	for _, m := range found {
		d := m.Document()
		d.Set("id", m.ID)
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) searchFile(ctx context.Context, query string) ([]movies.Document, error) {
	docs, err := s.json.Load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	if q == "" {
		return docs, nil
	}

	out := make([]movies.Document, 0, len(docs))
	for _, d := range docs {
		if containsFold(d.Text("title"), q) || containsFold(d.Text("director"), q) {
			out = append(out, d)
		}
	}
	return out, nil
}

// QuickSearch returns up to QuickSearchLimit relational matches. A blank
// query returns nothing.
func (s *Service) QuickSearch(ctx context.Context, query string) ([]movies.Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []movies.Summary{}, nil
	}

	found, err := s.relational.Search(ctx, query, QuickSearchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]movies.Summary, 0, len(found))
	for _, m := range found {
		out = append(out, m.Summary())
	}
	return out, nil
}

func containsFold(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}
