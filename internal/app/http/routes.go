package routes

import (
	moviesapi "movie-catalog/internal/api/movies"
	"movie-catalog/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, movies *moviesapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// reads
	r.GET("/movies", movies.ListMovies)
	r.GET("/movies/search", movies.QuickSearch)
	r.GET("/movies/export", movies.ExportMovies)
	r.GET("/movies/:id", movies.GetMovie)

	// ✅ Apply input sanitization to writes only
	writes := r.Group("/movies")
	writes.Use(middleware.SanitizeAndCleanInputMiddleware())

	writes.POST("", movies.CreateMovie)
	writes.POST("/import", movies.ImportMovies)
	writes.PUT("/:id", movies.UpdateMovie)
	writes.DELETE("/:id", movies.DeleteMovie)
}
