package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort        = "5001"
	defaultAPIURL         = "http://localhost:5001/api"
	defaultRequestTimeout = 10 * time.Second
	defaultSessionPath    = "storefront-session.db"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultCORSOrigin     = "http://localhost:3000"
	defaultCacheTTL       = 5 * time.Minute
)

var ErrDatabaseNotConfigured = errors.New("database environment variables not loaded properly")

type Config struct {
	AppEnv  string
	AppPort string

	// Storefront client
	APIURL         string
	RequestTimeout time.Duration
	SessionPath    string
	GeminiAPIKey   string
	GeminiModel    string

	// API server
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	RedisAddr         string
	CacheTTL          time.Duration
	CORSOrigin        string
	JWTSecret         string
	AdminPasswordHash string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:  os.Getenv("APP_ENV"),
		AppPort: getenv("APP_PORT", defaultAppPort),

		APIURL:         getenv("API_URL", defaultAPIURL),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
		SessionPath:    getenv("SESSION_PATH", defaultSessionPath),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", defaultGeminiModel),

		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		CacheTTL:          getDuration("CACHE_TTL", defaultCacheTTL),
		CORSOrigin:        getenv("CORS_ORIGIN", defaultCORSOrigin),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

// RequireDatabase reports whether the server-side settings are present.
func (c *Config) RequireDatabase() error {
	if c.DBHost == "" || c.DBName == "" {
		return ErrDatabaseNotConfigured
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
