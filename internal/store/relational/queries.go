package relational

import (
	"strings"

	"movie-catalog/internal/domain/movies"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func identityQuery(db *gorm.DB, title, director string, year int) *gorm.DB {
	return db.Model(&movies.Movie{}).
		Where("title = ? AND director = ? AND year = ?", title, director, year)
}

// searchQuery matches q case-insensitively as a substring of title, director,
// genre or cast. An empty q matches everything.
func searchQuery(db *gorm.DB, q string) *gorm.DB {
	tx := db.Model(&movies.Movie{})
	q = strings.TrimSpace(q)
	if q == "" {
		return tx
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
	return tx.Where(
		`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(director) LIKE ? ESCAPE '\' OR LOWER(genre) LIKE ? ESCAPE '\' OR LOWER(cast_members) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern, pattern,
	)
}
