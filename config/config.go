package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var SecretKey []byte

func Init() {
	// .env is optional outside local development
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT secret key not set")
	}
	SecretKey = []byte(secret)
}

func DatabaseURL() string {
	return "postgres://" + getEnv("DB_USER", "postgres") +
		":" + getEnv("DB_PASSWORD", "") +
		"@" + getEnv("DB_HOST", "localhost") +
		":" + getEnv("DB_PORT", "5432") +
		"/" + getEnv("DB_NAME", "savoria") +
		"?sslmode=" + getEnv("DB_SSLMODE", "disable")
}

func ServerPort() string {
	return ":" + getEnv("SERVER_PORT", "8080")
}

// NATSURL is empty when event publishing is disabled.
func NATSURL() string {
	return os.Getenv("NATS_URL")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
