package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// WordPress upstream. URL is the REST base (e.g. https://cms.example.com/wp-json/wp/v2).
	// User/AppPassword are required for write and preview operations only;
	// published-content reads are anonymous.
	WordPressURL         string
	WordPressUser        string
	WordPressAppPassword string

	// PreviewSecret gates draft/unpublished content access.
	PreviewSecret string

	// SiteURL is the public base URL used to build links in outgoing emails.
	SiteURL string

	// Email provider. Provider "ses" requires the SES fields; anything else
	// (including empty) selects the simulated mailer.
	EmailProvider      string
	EmailFromAddress   string
	EmailFromName      string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string

	// ContactInboxAddress receives contact messages and speaker applications.
	ContactInboxAddress string

	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:          env,
		Port:                 os.Getenv("PORT"),
		WordPressURL:         strings.TrimSuffix(os.Getenv("WORDPRESS_API_URL"), "/"),
		WordPressUser:        os.Getenv("WORDPRESS_USER"),
		WordPressAppPassword: os.Getenv("WORDPRESS_APP_PASSWORD"),
		PreviewSecret:        os.Getenv("PREVIEW_SECRET"),
		SiteURL:              strings.TrimSuffix(os.Getenv("SITE_URL"), "/"),
		EmailProvider:        os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:     os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:        os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:            os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID:       os.Getenv("AWS_SES_ACCESS_KEY_ID"),
		SESSecretAccessKey:   os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
		ContactInboxAddress:  os.Getenv("CONTACT_INBOX_ADDRESS"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "http://localhost:3000"
	}
	if cfg.EmailFromAddress == "" {
		cfg.EmailFromAddress = "noreply@localhost"
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSAllowedOrigins = []string{cfg.SiteURL}
	}

	return cfg, nil
}
