package config

import (
	"fmt"
	"os"
)

// Config holds the runtime configuration, loaded from environment variables
type Config struct {
	// Media upload endpoint receiving captured artifacts
	MediaUploadURL string

	// Customizer page hosting the rendering surfaces captured by chromedp
	CustomizerBaseURL string

	// Chrome/Chromium executable, empty to auto-detect
	ChromePath string

	// Google Drive service account credentials (mockup library sync)
	GoogleCredentialsPath string
	MockupFolderID        string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		MediaUploadURL:    getEnv("MEDIA_UPLOAD_URL", "https://media.winshirt.fr/upload-visuel.php"),
		CustomizerBaseURL: getEnv("CUSTOMIZER_BASE_URL", "http://localhost:3000"),
		ChromePath:        getEnv("CHROME_PATH", ""),

		GoogleCredentialsPath: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		MockupFolderID:        getEnv("MOCKUP_FOLDER_ID", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MediaUploadURL == "" {
		return fmt.Errorf("MEDIA_UPLOAD_URL is required")
	}
	if c.CustomizerBaseURL == "" {
		return fmt.Errorf("CUSTOMIZER_BASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
