package config

import (
	"os"
	"strings"
)

type Config struct {
	AppPort string
	AppEnv  string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	SessionSecret string

	AllowedOrigins []string
}

const (
	defaultPort = "5000"

	// Fixed list: deployed frontend plus local development.
	defaultOrigins = "https://virtual-quran-academy.vercel.app,http://localhost:4200"
)

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", defaultPort),
		AppEnv:  os.Getenv("APP_ENV"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", defaultOrigins)),
	}

	return cfg

}

// IsProduction controls secure-cookie enforcement.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
