package movies

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicate = errors.New("movie already exists")
	ErrNotFound  = errors.New("movie not found")

	// ErrFileUnavailable marks a flat file that is missing or unreadable.
	// Stores log it and fall back to an empty corpus.
	ErrFileUnavailable = errors.New("flat file unavailable")
)

// ValidationError carries one message per offending field, keyed by the
// field's wire name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MalformedDocumentError is returned when a bulk import document cannot be
// decoded. Nothing is written when it occurs.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed import document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }
