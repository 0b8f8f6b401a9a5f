package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the gateway reads from the environment. Each
// integration secret is optional; absence degrades that integration
// independently (demo-mode webhook acks, skipped relays, or an explicit
// not_configured error for payment initiation).
type Config struct {
	Addr string

	// Stripe
	StripeSecretKey     string
	StripeWebhookSecret string

	// Case management relay
	CaseSheetWebhookURL string
	// Fallback workbook written when the sheet webhook is unset or failing.
	CaseWorkbookPath string

	// Transactional email
	ResendAPIKey string

	// Citation image storage
	CitationUploadWebhookURL string

	// Wizard draft persistence. Empty RedisURL selects the in-memory store.
	RedisURL      string
	DraftTTL      time.Duration
	RelayTimeout  time.Duration
	StripeTimeout time.Duration

	// RateLimitPerMinute caps POSTs per client IP; 0 disables throttling.
	RateLimitPerMinute int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("INTAKE_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:                     addr,
		StripeSecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CaseSheetWebhookURL:      os.Getenv("CASE_SHEET_WEBHOOK_URL"),
		CaseWorkbookPath:         envOr("CASE_WORKBOOK_PATH", "intake-fallback.xlsx"),
		ResendAPIKey:             os.Getenv("RESEND_API_KEY"),
		CitationUploadWebhookURL: os.Getenv("CITATION_UPLOAD_WEBHOOK_URL"),
		RedisURL:                 os.Getenv("REDIS_URL"),
		DraftTTL:                 durationOr("WIZARD_DRAFT_TTL", 72*time.Hour),
		RelayTimeout:             durationOr("RELAY_TIMEOUT", 10*time.Second),
		StripeTimeout:            durationOr("STRIPE_TIMEOUT", 20*time.Second),
		RateLimitPerMinute:       intOr("RATE_LIMIT_RPM", 60),
	}
}

func intOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
