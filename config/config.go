package config

import (
	"os"
	"strings"
)

const (
	AdminTokenHeader = "X-Admin-Token"
	AdminTokenQuery  = "token"
)

// Config is built once at startup and handed to everything that needs it.
type Config struct {
	Port        string
	AdminToken  string
	DBPath      string
	DatabaseURL string
	StaticDir   string
	CorsOrigins []string
	GinMode     string
	DBLogLevel  string
}

// Load reads the process environment. Call godotenv.Load first if a .env file should apply.
func Load() *Config {
	return &Config{
		Port:        envOrDefault("PORT", "3000"),
		AdminToken:  envOrDefault("ADMIN_TOKEN", "changeme"),
		DBPath:      envOrDefault("DB_PATH", "data/tourism.db"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StaticDir:   staticDirFromEnv(),
		CorsOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		GinMode:     envOrDefault("GIN_MODE", "debug"),
		DBLogLevel:  envOrDefault("DB_LOG_LEVEL", "warn"),
	}
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// STATIC_DIR set to an empty string turns static serving off.
func staticDirFromEnv() string {
	value, ok := os.LookupEnv("STATIC_DIR")
	if !ok {
		return "public"
	}
	return strings.TrimSpace(value)
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
