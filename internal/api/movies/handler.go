package moviesapi

import (
	"net/http"
	"strconv"

	"movie-catalog/internal/catalog"
	"movie-catalog/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /movies?source=db|file&query=
// ------------------------------
func (h *Handler) ListMovies(c *gin.Context) {
	source := movies.ParseSource(c.DefaultQuery("source", "db"))
	query := c.Query("query")

	found, err := h.svc.Search(c.Request.Context(), query, source)
	if err != nil {
		respondError(c, err, "Failed to load movies")
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Source: source.String(),
		Query:  query,
		Movies: found,
	})
}

// ------------------------------
// GET /movies/search?query=  (interactive, db only)
// ------------------------------
func (h *Handler) QuickSearch(c *gin.Context) {
	results, err := h.svc.QuickSearch(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, QuickSearchResponse{Results: results})
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load movie")
		return
	}

	c.JSON(http.StatusOK, m)
}

// ------------------------------
// POST /movies
// ------------------------------
func (h *Handler) CreateMovie(c *gin.Context) {
	var req SaveMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := movies.ParseTarget(req.SaveTo)
	if err != nil {
		respondError(c, err, "Failed to save movie")
		return
	}

	if err := h.svc.Save(c.Request.Context(), req.Input, target); err != nil {
		respondError(c, err, "Failed to save movie")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved", "target": target.String()})
}

// ------------------------------
// PUT /movies/:id
// ------------------------------
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.svc.Update(c.Request.Context(), id, req.Input)
	if err != nil {
		respondError(c, err, "Failed to update movie")
		return
	}

	c.JSON(http.StatusOK, m)
}

// ------------------------------
// DELETE /movies/:id
// ------------------------------
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete movie")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
