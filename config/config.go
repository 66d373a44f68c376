package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT      string
	DB_DRIVER string
	DB_URL    string

	MOVIES_JSON_PATH string
	MOVIES_XML_PATH  string

	CORS_ORIGIN string
	LOG_LEVEL   string
	GIN_MODE    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_DRIVER = getEnv("DB_DRIVER", "postgres")
	DB_URL = mustEnv("DB_URL")

	// flat-file targets live next to the binary unless overridden
	MOVIES_JSON_PATH = getEnv("MOVIES_JSON_PATH", "movies_data.json")
	MOVIES_XML_PATH = getEnv("MOVIES_XML_PATH", "movies_data.xml")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	GIN_MODE = getEnv("GIN_MODE", "debug")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
