package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultJWTAccessTTL   = "24h"
	defaultNotifyTimeout  = "10s"
	defaultListenAddr     = ":8080"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultInternalSecret = "change-me-internal-secret"
)

type Config struct {
	AppEnv       string
	ListenAddr   string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// InternalSecret gates the notification endpoints; only trusted
	// internal callers hold it.
	InternalSecret string
	// NotifyBaseURL is where the quote orchestrator posts notification
	// payloads. Defaults to the service's own listen address.
	NotifyBaseURL string
	NotifyTimeout time.Duration

	SMTPHost string
	SMTPPort string
	SMTPFrom string
	SMTPPass string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "nilinki.db")
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.InternalSecret = strings.TrimSpace(getEnv("INTERNAL_FUNCTION_SECRET", defaultInternalSecret))
	cfg.NotifyBaseURL = strings.TrimRight(getEnv("NOTIFY_BASE_URL", "http://127.0.0.1:8080"), "/")

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.NotifyTimeout, err = parseDurationEnv("NOTIFY_TIMEOUT", defaultNotifyTimeout)
	if err != nil {
		return nil, err
	}

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")
	cfg.SMTPFrom = strings.TrimSpace(os.Getenv("SMTP_FROM"))
	cfg.SMTPPass = os.Getenv("SMTP_PASS")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}

	if IsProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.InternalSecret, defaultInternalSecret) {
			return fmt.Errorf("in prod/release INTERNAL_FUNCTION_SECRET must be set and not default")
		}
		if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
			return fmt.Errorf("in prod/release SMTP_HOST and SMTP_FROM must be set")
		}
	}

	return nil
}

// IsProdLike reports whether the environment should run with production
// defaults (release-mode gin, json logs, enforced secrets).
func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
