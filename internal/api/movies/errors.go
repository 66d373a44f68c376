package moviesapi

import (
	"errors"
	"net/http"

	"movie-catalog/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

// respondError maps catalog errors onto HTTP responses. failMsg is used for
// anything unexpected.
func respondError(c *gin.Context, err error, failMsg string) {
	var ve *movies.ValidationError
	var me *movies.MalformedDocumentError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": ve.Fields})
	case errors.As(err, &me):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON file format", "details": me.Err.Error()})
	case errors.Is(err, movies.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "This movie already exists"})
	case errors.Is(err, movies.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg, "details": err.Error()})
	}
}
