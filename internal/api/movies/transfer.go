package moviesapi

import (
	"net/http"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// POST /movies/import  (multipart: json_file, save_to)
// ------------------------------
func (h *Handler) ImportMovies(c *gin.Context) {
	fh, err := c.FormFile("json_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "json_file is required"})
		return
	}

	target, err := movies.ParseTarget(c.PostForm("save_to"))
	if err != nil {
		respondError(c, err, "Import failed")
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload", "details": err.Error()})
		return
	}
	defer f.Close()

	sum, err := h.svc.Import(c.Request.Context(), f, target)
	if err != nil {
		respondError(c, err, "Import failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"target":     target.String(),
		"added":      sum.Added,
		"duplicates": sum.Duplicates,
	})
}

// ------------------------------
// GET /movies/export
// ------------------------------
func (h *Handler) ExportMovies(c *gin.Context) {
	body, err := h.svc.Export(c.Request.Context())
	if err != nil {
		respondError(c, err, "Export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+catalog.ExportFilename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
