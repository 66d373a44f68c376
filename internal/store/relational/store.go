// Package relational is the gorm-backed movie store. Uniqueness of
// (title, director, year) is checked before writes and enforced again by
// the idx_movies_identity unique index.
package relational

import (
	"context"
	"errors"

	"movie-catalog/internal/domain/movies"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save inserts doc unless a movie with the same identity triple exists.
func (s *Store) Save(ctx context.Context, doc movies.Document) error {
	m := doc.Movie()
	return s.Create(ctx, &m)
}

func (s *Store) Create(ctx context.Context, m *movies.Movie) error {
	db := s.db.WithContext(ctx)

	dup, err := exists(db, m.Title, m.Director, m.Year, 0)
	if err != nil {
		return err
	}
	if dup {
		return movies.ErrDuplicate
	}

	if err := db.Create(m).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uint) (*movies.Movie, error) {
	var m movies.Movie
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// Update replaces every editable field of movie id with rec. created_at is
// left untouched.
func (s *Store) Update(ctx context.Context, id uint, rec movies.Record) (*movies.Movie, error) {
	var out movies.Movie

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}

		dup, err := exists(tx, rec.Title, rec.Director, rec.Year, id)
		if err != nil {
			return err
		}
		if dup {
			return movies.ErrDuplicate
		}

		if err := tx.Model(&movies.Movie{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":        rec.Title,
				"director":     rec.Director,
				"year":         rec.Year,
				"genre":        rec.Genre,
				"duration":     rec.Duration,
				"rating":       rec.Rating,
				"description":  rec.Description,
				"cast_members": rec.Cast,
				"image_url":    rec.ImageURL,
			}).Error; err != nil {
			return err
		}

		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&movies.Movie{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return movies.ErrNotFound
	}
	return nil
}

// Search returns matches most-recent-first. limit <= 0 means no limit.
func (s *Store) Search(ctx context.Context, q string, limit int) ([]movies.Movie, error) {
	tx := searchQuery(s.db.WithContext(ctx), q).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	out := []movies.Movie{}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// All returns every movie in insertion order.
func (s *Store) All(ctx context.Context) ([]movies.Movie, error) {
	out := []movies.Movie{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func exists(db *gorm.DB, title, director string, year int, excludeID uint) (bool, error) {
	q := identityQuery(db, title, director, year)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return movies.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return movies.ErrDuplicate
	}
	return err
}
