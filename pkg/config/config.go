package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// AdminKey is the shared operator secret. When empty, every authenticated
	// request is rejected (fail closed).
	AdminKey string

	Netlify NetlifyConfig
	Mail    MailConfig

	MetricsPath string
}

type NetlifyConfig struct {
	// AccessToken authorizes calls to the Netlify Forms API.
	AccessToken string

	// SiteID identifies the site whose forms hold bookings and status records.
	SiteID string

	// SiteURL is where status-form submissions are POSTed so Netlify ingests
	// them as new "booking-status" records. Optional; the recorder falls back
	// to the production site URL when unset.
	SiteURL string
}

type MailConfig struct {
	// User and AppPassword are the Gmail account and app password used to send
	// customer notifications.
	User        string
	AppPassword string

	// FromName is the display name on outgoing mail (optional).
	FromName string

	// OwnerEmail is cc'd on every customer notification when set (optional).
	OwnerEmail string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Hosted runtimes set PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8080"
		}
	}

	return Config{
		AppEnv:   env("APP_ENV", "dev"),
		HTTPAddr: httpAddr,
		AdminKey: os.Getenv("ADMIN_KEY"),
		Netlify: NetlifyConfig{
			AccessToken: os.Getenv("NETLIFY_ACCESS_TOKEN"),
			SiteID:      os.Getenv("SITE_ID"),
			SiteURL:     os.Getenv("SITE_URL"),
		},
		Mail: MailConfig{
			User:        os.Getenv("GMAIL_USER"),
			AppPassword: os.Getenv("GMAIL_APP_PASSWORD"),
			FromName:    os.Getenv("FROM_NAME"),
			OwnerEmail:  os.Getenv("OWNER_EMAIL"),
		},
		MetricsPath: env("METRICS_PATH", "/metrics"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
