package movies

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MinYear   = 1895
	MaxYear   = 2030
	MinRating = 0
	MaxRating = 10
)

// Input is a submitted movie before validation.
type Input struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Director    string  `json:"director" validate:"required,max=100"`
	Year        int     `json:"year" validate:"gte=1895,lte=2030"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Duration    int     `json:"duration" validate:"gt=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	Description string  `json:"description" validate:"required"`
	Cast        string  `json:"cast" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=200,http_url"`
}

// Record is a validated, normalized movie ready to be persisted.
type Record struct {
	Title       string
	Director    string
	Year        int
	Genre       string
	Duration    int
	Rating      float64
	Description string
	Cast        string
	ImageURL    *string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the input against the catalog's field rules. It has no side
// effects: it returns either a normalized Record or a *ValidationError.
func Validate(in Input) (Record, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Director = strings.TrimSpace(in.Director)
	in.Genre = strings.TrimSpace(in.Genre)
	in.Description = strings.TrimSpace(in.Description)
	in.Cast = strings.TrimSpace(in.Cast)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Record{}, err
		}
		ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
		for _, fe := range fieldErrs {
			if _, seen := ve.Fields[fe.Field()]; !seen {
				ve.Fields[fe.Field()] = messageFor(fe)
			}
		}
		return Record{}, ve
	}

	rec := Record{
		Title:       in.Title,
		Director:    in.Director,
		Year:        in.Year,
		Genre:       in.Genre,
		Duration:    in.Duration,
		Rating:      in.Rating,
		Description: in.Description,
		Cast:        in.Cast,
	}
	if in.ImageURL != "" {
		rec.ImageURL = &in.ImageURL
	}
	return rec, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "year":
		return fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear)
	case "rating":
		return fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating)
	case "duration":
		return "duration must be a positive number of minutes"
	}

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "http_url":
		return "must be a valid URL"
	}
	return "invalid value"
}

// Movie builds the relational row for the record. CreatedAt is stamped by the store.
func (r Record) Movie() Movie {
	return Movie{
		Title:       r.Title,
		Director:    r.Director,
		Year:        r.Year,
		Genre:       r.Genre,
		Duration:    r.Duration,
		Rating:      r.Rating,
		Description: r.Description,
		Cast:        r.Cast,
		ImageURL:    r.ImageURL,
	}
}

// Document builds the flat-file form of the record with created_at stamped.
func (r Record) Document(createdAt time.Time) Document {
	m := r.Movie()
	m.CreatedAt = createdAt
	return m.Document()
}
