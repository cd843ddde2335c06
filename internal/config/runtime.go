package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr              = ":8080"
	defaultDatabaseURL       = "luxestate.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTTTL            = "24h"
	defaultOptionReplyDelay  = "800ms"
	defaultTextReplyDelay    = "1s"
	defaultConfirmationReset = "3s"
	defaultMaxDocumentBytes  = 5 * 1024 * 1024
)

// RuntimeConfig carries every tunable the server reads from the environment.
type RuntimeConfig struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// Conversation engine: simulated bot reply delays.
	OptionReplyDelay time.Duration
	TextReplyDelay   time.Duration

	// Booking wizard: how long a confirmed booking stays on screen
	// before the session resets to an empty draft.
	ConfirmationReset time.Duration

	// Upper bound for a single uploaded document.
	MaxDocumentBytes int64
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = strings.TrimSpace(getEnv("ADDR", defaultAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.OptionReplyDelay, err = parseDurationEnv("BOT_OPTION_REPLY_DELAY", defaultOptionReplyDelay)
	if err != nil {
		return nil, err
	}

	cfg.TextReplyDelay, err = parseDurationEnv("BOT_TEXT_REPLY_DELAY", defaultTextReplyDelay)
	if err != nil {
		return nil, err
	}

	cfg.ConfirmationReset, err = parseDurationEnv("BOOKING_CONFIRMATION_RESET", defaultConfirmationReset)
	if err != nil {
		return nil, err
	}

	cfg.MaxDocumentBytes = parseInt64Env("MAX_DOCUMENT_BYTES", defaultMaxDocumentBytes)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.OptionReplyDelay < 0 || cfg.TextReplyDelay < 0 {
		return fmt.Errorf("bot reply delays must be >= 0")
	}
	if cfg.ConfirmationReset <= 0 {
		return fmt.Errorf("BOOKING_CONFIRMATION_RESET must be > 0")
	}
	if cfg.MaxDocumentBytes <= 0 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
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

func parseInt64Env(name string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
