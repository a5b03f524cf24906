package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Email provider (SendGrid-compatible transactional API)
	EmailAPIKey      string
	EmailFromAddress string
	EmailFromName    string
	ContactEmailTo   string
	// CORS allow-list of front-end origins
	AllowedOrigins []string
	// Redis/Upstash Configuration (rate-limit backend)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Ordered credential resolution: RESEND_API_KEY wins over SENDGRID_API_KEY.
		// Both names are accepted for backward compatibility with earlier deploys.
		EmailAPIKey:      getEnv("RESEND_API_KEY", getEnv("SENDGRID_API_KEY", "")),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", "noreply@kitjistudios.com"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Kitji Studios Website"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "sales@kitjistudios.com"),
		AllowedOrigins:   splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000,https://localhost:5173")),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Falling back to the in-memory submission store.")
	}
	if cfg.EmailAPIKey == "" {
		log.Println("WARNING: No email API key configured (RESEND_API_KEY / SENDGRID_API_KEY). Email sending will be disabled.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, trimming blanks and any
// trailing slash that would break exact-match comparison.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		origin := strings.TrimRight(strings.TrimSpace(p), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
