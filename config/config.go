package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisHost   string
	RedisPort   string
	JwtSecret   string
	JwtExpiry   time.Duration
	SaltRound   int
}

var AppConfig Config

// LoadConfig reads the .env file (if present) and environment variables
// into AppConfig. Missing optional values fall back to defaults.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=kono port=5432 sslmode=disable"),
		RedisHost:   getEnv("REDIS_HOST", "localhost"),
		RedisPort:   getEnv("REDIS_PORT", "6379"),
		JwtSecret:   getEnv("JWT_SECRET", ""),
		JwtExpiry:   time.Duration(getEnvInt("JWT_EXPIRE_MIN", 60*24)) * time.Minute,
		SaltRound:   getEnvInt("SALT_ROUND", 10),
	}

	if AppConfig.JwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}
