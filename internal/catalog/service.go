// Package catalog routes movie operations to the relational store or one of
// the flat-file stores.
package catalog

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/domain/movies"
	"movie-catalog/internal/store/jsonfile"
	"movie-catalog/internal/store/relational"
	"movie-catalog/internal/store/xmlfile"

	"github.com/rs/zerolog"
)

// QuickSearchLimit caps interactive search results.
const QuickSearchLimit = 10

// Backend is a save target. The relational backend rejects duplicates with
// movies.ErrDuplicate; the flat-file backends append unconditionally.
type Backend interface {
	Save(ctx context.Context, doc movies.Document) error
}

type Service struct {
	relational *relational.Store
	json       *jsonfile.Store
	xml        *xmlfile.Store
	log        zerolog.Logger

	now func() time.Time
}

func NewService(rel *relational.Store, js *jsonfile.Store, xs *xmlfile.Store, log zerolog.Logger) *Service {
	return &Service{
		relational: rel,
		json:       js,
		xml:        xs,
		log:        log.With().Str("component", "catalog").Logger(),
		now:        time.Now,
	}
}

func (s *Service) backend(t movies.Target) (Backend, error) {
	switch t {
	case movies.TargetRelational:
		return s.relational, nil
	case movies.TargetJSON:
		return s.json, nil
	case movies.TargetXML:
		return s.xml, nil
	}
	return nil, fmt.Errorf("no backend for target %s", t)
}

// Save validates in and persists it to target.
func (s *Service) Save(ctx context.Context, in movies.Input, target movies.Target) error {
	rec, err := movies.Validate(in)
	if err != nil {
		return err
	}

	b, err := s.backend(target)
	if err != nil {
		return err
	}

	if err := b.Save(ctx, rec.Document(s.now())); err != nil {
		return err
	}

	s.log.Info().
		Str("target", target.String()).
		Str("title", rec.Title).
		Int("year", rec.Year).
		Msg("movie saved")
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*movies.Movie, error) {
	return s.relational.Get(ctx, id)
}

// Update applies a full-record edit. Only the relational store supports it.
func (s *Service) Update(ctx context.Context, id uint, in movies.Input) (*movies.Movie, error) {
	rec, err := movies.Validate(in)
	if err != nil {
		return nil, err
	}

	m, err := s.relational.Update(ctx, id, rec)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("id", id).Msg("movie updated")
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.relational.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("id", id).Msg("movie deleted")
	return nil
}
