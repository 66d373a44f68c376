package main

import (
	"movie-catalog/config"
	"movie-catalog/database"
	moviesapi "movie-catalog/internal/api/movies"
	routes "movie-catalog/internal/app/http"
	"movie-catalog/internal/app/http/middleware"
	"movie-catalog/internal/catalog"
	"movie-catalog/internal/logger"
	"movie-catalog/internal/store/jsonfile"
	"movie-catalog/internal/store/relational"
	"movie-catalog/internal/store/xmlfile"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	gin.SetMode(config.GIN_MODE)

	log := logger.New().
		WithLevel(config.LOG_LEVEL).
		Pretty(config.GIN_MODE == gin.DebugMode).
		Make()

	database.InitDB()

	jsonStore := jsonfile.Open(config.MOVIES_JSON_PATH, log)
	xmlStore := xmlfile.Open(config.MOVIES_XML_PATH, log)
	log.Info().
		Str("json", jsonStore.Path()).
		Str("xml", xmlStore.Path()).
		Msg("flat-file stores ready")

	svc := catalog.NewService(relational.New(database.DB), jsonStore, xmlStore, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: config.CORS_ORIGIN != "*",
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, moviesapi.NewHandler(svc))

	log.Info().Str("port", config.PORT).Msg("server starting")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
