package movies

import (
	"time"
)

// TimestampLayout is how created_at is written to flat files and exports.
const TimestampLayout = "02.01.2006 15:04"

type Movie struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:200;not null;uniqueIndex:idx_movies_identity,priority:1" json:"title"`
	Director string `gorm:"size:100;not null;uniqueIndex:idx_movies_identity,priority:2" json:"director"`
	Year     int    `gorm:"not null;uniqueIndex:idx_movies_identity,priority:3" json:"year"`

	Genre       string  `gorm:"size:100;not null" json:"genre"`
	Duration    int     `gorm:"not null" json:"duration"`
	Rating      float64 `gorm:"not null" json:"rating"`
	Description string  `gorm:"type:text" json:"description"`
	Cast        string  `gorm:"column:cast_members;type:text" json:"cast"`
	ImageURL    *string `gorm:"size:200" json:"image_url"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// Summary is the shape returned by quick search.
type Summary struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Year     int     `json:"year"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
	ImageURL *string `json:"image_url"`
}

func (m Movie) Summary() Summary {
	return Summary{
		ID:       m.ID,
		Title:    m.Title,
		Director: m.Director,
		Year:     m.Year,
		Genre:    m.Genre,
		Rating:   m.Rating,
		ImageURL: m.ImageURL,
	}
}

// Document projects the movie onto the export / flat-file field set.
// id is left out; a nil image_url is omitted.
func (m Movie) Document() Document {
	var d Document
	d.Set("title", m.Title)
	d.Set("director", m.Director)
	d.Set("year", m.Year)
	d.Set("genre", m.Genre)
	d.Set("duration", m.Duration)
	d.Set("rating", m.Rating)
	d.Set("description", m.Description)
	d.Set("cast", m.Cast)
	if m.ImageURL != nil {
		d.Set("image_url", *m.ImageURL)
	}
	d.Set("created_at", m.CreatedAt.Format(TimestampLayout))
	return d
}
