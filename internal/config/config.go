package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "rebookz-dev-session-secret"

var (
	ErrMissingSecret   = errors.New("SESSION_SECRET is required outside development")
	ErrUnknownStore    = errors.New("unknown SESSION_STORE")
	ErrUnknownKeyword  = errors.New("unknown KEYWORD_MODE")
	ErrMissingDatabase = errors.New("DATABASE_URL is required for the postgres session store")
)

type Config struct {
	AppEnv  string
	AppPort string

	ServerURL  string
	APIBaseURL string
	APITimeout time.Duration

	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string
	SessionStore  string

	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AppScheme       string
	AppDownloadURL  string
	SuperAdminEmail string

	PageSize    int
	KeywordMode string

	LoginRateLimit float64
	LoginRateBurst int

	// TrustedProxies are the peer addresses whose forwarding headers are
	// believed. Empty means the socket address is always the client.
	TrustedProxies []string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	serverURL := strings.TrimRight(getEnv("SERVER_URL", "http://localhost:5001"), "/")

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		AppPort:         getEnv("APP_PORT", "3000"),
		ServerURL:       serverURL,
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", serverURL+"/api"), "/"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionCookie:   getEnv("SESSION_COOKIE", "rebookz_session"),
		SessionStore:    getEnv("SESSION_STORE", "memory"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		AppScheme:       getEnv("APP_SCHEME", "rebookzapp"),
		AppDownloadURL:  getEnv("APP_DOWNLOAD_URL", "https://rebookz.com/download"),
		SuperAdminEmail: strings.ToLower(os.Getenv("SUPER_ADMIN_EMAIL")),
		KeywordMode:     getEnv("KEYWORD_MODE", "submit"),
		TrustedProxies:  listEnv("TRUSTED_PROXIES"),
	}

	var err error
	if cfg.APITimeout, err = durationEnv("API_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = intEnv("PAGE_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.LoginRateBurst, err = intEnv("LOGIN_RATE_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimit, err = floatEnv("LOGIN_RATE_LIMIT", 2); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		if c.AppEnv != "development" && c.AppEnv != "test" {
			return ErrMissingSecret
		}
		c.SessionSecret = devSessionSecret
	}

	switch c.SessionStore {
	case "memory", "redis":
	case "postgres":
		if c.DatabaseURL == "" {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.SessionStore)
	}

	if c.KeywordMode != "submit" && c.KeywordMode != "live" {
		return fmt.Errorf("%w: %q", ErrUnknownKeyword, c.KeywordMode)
	}

	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// listEnv splits a comma-separated variable, dropping blank entries.
func listEnv(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func floatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
