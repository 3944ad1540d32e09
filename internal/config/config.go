package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Gmail   GmailConfig
	Cache   CacheConfig
	Refresh RefreshConfig
	MongoDB MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// GmailConfig contains credentials and options for the Gmail REST API used for
// excess-order alerts. When AccessToken is empty, alerting is disabled.
type GmailConfig struct {
	AccessToken string
	BaseURL     string
	Sender      string
}

// CacheConfig controls the bounded-staleness reference table cache.
type CacheConfig struct {
	TTL time.Duration
}

// RefreshConfig holds scheduler-related settings for cache warming.
type RefreshConfig struct {
	CronSchedule string
	Timezone     string
}

// MongoDBConfig holds settings for the optional order archive.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cacheTTL, err := getenvSeconds("TABLE_CACHE_TTL_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Gmail: GmailConfig{
			AccessToken: os.Getenv("GMAIL_ACCESS_TOKEN"),
			BaseURL:     getenvWithDefault("GMAIL_API_BASE_URL", "https://gmail.googleapis.com"),
			Sender:      os.Getenv("GMAIL_SENDER"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
		Refresh: RefreshConfig{
			CronSchedule: getenvWithDefault("REFRESH_CRON_SCHEDULE", "*/15 * * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "tradeorders"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided")
	}

	if c.Gmail.BaseURL == "" {
		return errors.New("GMAIL_API_BASE_URL must not be empty")
	}

	if c.Cache.TTL <= 0 {
		return errors.New("TABLE_CACHE_TTL_SECONDS must be positive")
	}

	if c.Refresh.CronSchedule == "" {
		return errors.New("REFRESH_CRON_SCHEDULE must be provided")
	}

	if c.Refresh.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvSeconds(key string, fallback int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Second, nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer number of seconds: %w", key, err)
	}

	return time.Duration(seconds) * time.Second, nil
}
