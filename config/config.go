package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string
	APP_ENV     string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "5000")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	APP_ENV = getEnv("APP_ENV", "development")
}

// IsDevelopment reports whether error details may be exposed in 500 responses.
func IsDevelopment() bool {
	return APP_ENV == "development"
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
