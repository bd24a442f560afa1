package config

import (
	"os"
	"time"
)

// Config carries everything injected into the pipeline and handlers.
// The spreadsheet identifiers default to the production sheet so a bare
// deployment works; tests supply their own fixture values.
type Config struct {
	Port            string
	SpreadsheetID   string
	OrdersGID       string
	ProductsGID     string
	OrdersSheetName string

	// WritebackURL is the Apps-Script style proxy that flips the status
	// cell. Empty means writeback is skipped (soft) and only logged.
	WritebackURL    string
	WritebackSecret string

	FallbackImageURL string
	AuthorizeDelay   time.Duration

	// DatabaseURL enables the optional payment audit trail when set.
	DatabaseURL string

	// Informational only; carried for parity with the deployment
	// environment, unused by the pipeline.
	OAuthClientID     string
	OAuthClientSecret string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8081"),
		SpreadsheetID:     getEnv("SPREADSHEET_ID", "1hzt3zyATvpMz5lN-ijwO9XzSxkmuiWY4-yTpF_Kojjc"),
		OrdersGID:         getEnv("ORDERS_GID", "2936601"),
		ProductsGID:       getEnv("PRODUCTS_GID", "0"),
		OrdersSheetName:   getEnv("ORDERS_SHEET_NAME", "skincare orders"),
		WritebackURL:      getEnv("WRITEBACK_URL", ""),
		WritebackSecret:   getEnv("WRITEBACK_SECRET", ""),
		FallbackImageURL:  getEnv("FALLBACK_IMAGE_URL", "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?w=300"),
		AuthorizeDelay:    getDuration("AUTHORIZE_DELAY", 2*time.Second),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
