package config

import (
	"log"
	"os"
)

type Config struct {
	Env        string
	Port       string
	DBURL      string
	RedisAddr  string
	JWTSecret  string
	TotpIssuer string
}

func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		DBURL:      mustGetEnv("DB_URL"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:  mustGetEnv("JWT_SECRET"),
		TotpIssuer: getEnv("TOTP_ISSUER", "GreenLedger"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}
