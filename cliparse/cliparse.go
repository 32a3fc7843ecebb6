// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKeySalt  string
	AwardSlugSalt string

	// PaymentPageURL is the external page checkout hands off to
	PaymentPageURL string
	Currency       string

	// CeremonyOverride makes a passed ceremony date report "completed"
	CeremonyOverride bool

	LogLevel  string
	LogFormat string
}

// LoadDotEnv reads KEY=value pairs from path into the environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ceremony string

	flags := flag.NewFlagSet("award-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	flags.StringVar(&cfg.AwardSlugSalt, "slug-salt", "", "Award slug salt (prefer env)")

	// Voting and checkout
	flags.StringVar(&cfg.PaymentPageURL, "payment-url", "", "External payment page URL")
	flags.StringVar(&cfg.Currency, "currency", "", "ISO currency code for vote prices")
	flags.StringVar(&ceremony, "ceremony-override", "", "Report completed once the ceremony date has passed (true/false)")

	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = getenv("DATABASE_TYPE", DatabaseSQLite)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.AwardSlugSalt == "" {
		cfg.AwardSlugSalt = os.Getenv("AWARD_SLUG_SALT")
	}
	if cfg.AwardSlugSalt == "" {
		return Config{}, errors.New("AWARD_SLUG_SALT required")
	}

	if cfg.PaymentPageURL == "" {
		cfg.PaymentPageURL = getenv("PAYMENT_PAGE_URL", "http://localhost:5173/payment")
	}
	if cfg.Currency == "" {
		cfg.Currency = getenv("CURRENCY", "USD")
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)

	if ceremony == "" {
		ceremony = os.Getenv("CEREMONY_OVERRIDE")
	}
	cfg.CeremonyOverride = true
	if ceremony != "" {
		v, err := strconv.ParseBool(ceremony)
		if err != nil {
			return Config{}, errors.New("invalid CEREMONY_OVERRIDE value")
		}
		cfg.CeremonyOverride = v
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = getenv("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = getenv("LOG_FORMAT", "text")
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
