package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/pathlight/courseware/internal/apperr"
)

type Config struct {
	Env       string // dev|prod
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	// DataDir is where the file-backed progress and note stores live.
	DataDir string

	AuthSecret string

	CORSOrigins []string

	// Payment processor. All three of secret key, webhook secret and price
	// id must be present for the purchase flow to operate; there is no demo
	// fallback for paths that move money.
	PaymentAPIBase       string
	PaymentSecretKey     string
	PaymentWebhookSecret string
	PriceID              string
	CheckoutSuccessURL   string
	CheckoutCancelURL    string
}

// FromEnv loads configuration from COURSEWARE_-prefixed environment
// variables, e.g. COURSEWARE_HTTP_ADDR, COURSEWARE_PAYMENT_SECRET_KEY.
func FromEnv() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("COURSEWARE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "COURSEWARE_"))
	}), nil); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Env:       strOr(k, "env", "dev"),
		HTTPAddr:  strOr(k, "http_addr", ":8080"),
		PublicURL: k.String("public_url"),

		DBDriver: strOr(k, "db_driver", "sqlite"),
		DBDSN:    k.String("db_dsn"),

		DataDir: strOr(k, "data_dir", "./data"),

		AuthSecret: k.String("auth_secret"),

		PaymentAPIBase:       strOr(k, "payment_api_base", "https://api.stripe.com"),
		PaymentSecretKey:     k.String("payment_secret_key"),
		PaymentWebhookSecret: k.String("payment_webhook_secret"),
		PriceID:              k.String("price_id"),
		CheckoutSuccessURL:   k.String("checkout_success_url"),
		CheckoutCancelURL:    k.String("checkout_cancel_url"),
	}

	origins := strOr(k, "cors_origins", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

// Validate checks the settings every deployment needs. Payment settings
// are checked separately because the rest of the app can run without them.
func (c Config) Validate() error {
	if c.AuthSecret == "" {
		return apperr.Configuration("COURSEWARE_AUTH_SECRET is required")
	}
	return nil
}

// BillingEnabled reports whether the purchase flow may operate. When it
// returns false the checkout and webhook endpoints fail closed.
func (c Config) BillingEnabled() bool {
	return c.PaymentSecretKey != "" && c.PaymentWebhookSecret != "" && c.PriceID != ""
}

func strOr(k *koanf.Koanf, key, def string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return def
}
