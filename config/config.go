package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	ENV         string
	DB_URL      string
	CORS_ORIGIN string

	CLOUDINARY_CLOUD_NAME      string
	CLOUDINARY_API_KEY         string
	CLOUDINARY_API_SECRET      string
	CLOUDINARY_ARTISTS_FOLDER  string
	CLOUDINARY_ARTWORKS_FOLDER string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	ENV = getEnv("ENV", "development")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	CLOUDINARY_CLOUD_NAME = mustEnv("CLOUDINARY_CLOUD_NAME")
	CLOUDINARY_API_KEY = mustEnv("CLOUDINARY_API_KEY")
	CLOUDINARY_API_SECRET = mustEnv("CLOUDINARY_API_SECRET")
	CLOUDINARY_ARTISTS_FOLDER = getEnv("CLOUDINARY_ARTISTS_FOLDER", "artcatalog/artists")
	CLOUDINARY_ARTWORKS_FOLDER = getEnv("CLOUDINARY_ARTWORKS_FOLDER", "artcatalog/artworks")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "admin@artcatalog.local")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "admin12345")
}

// IsProduction controls cookie security flags and the SameSite policy.
func IsProduction() bool {
	return ENV == "production"
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
