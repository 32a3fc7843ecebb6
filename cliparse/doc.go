// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file can seed the environment first:

	_ = cliparse.LoadDotEnv(".env")

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string or SQLite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret for admin key HMAC (required)
  - AwardSlugSalt: Secret for award slug generation (required)
  - PaymentPageURL: external payment page used by checkout
  - Currency: ISO code shown next to prices (default: USD)
  - CeremonyOverride: passed ceremony date means "completed" (default: true)
  - LogLevel, LogFormat: slog level and handler (text or json)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	--admin-salt       Admin key salt
	--slug-salt        Award slug salt
	--payment-url      Payment page URL
	--currency         Currency code
	--ceremony-override true/false
	--log-level        debug, info, warn, error
	--log-format       text or json

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	ADMIN_KEY_SALT    → --admin-salt
	AWARD_SLUG_SALT   → --slug-salt
	PAYMENT_PAGE_URL  → --payment-url
	CURRENCY          → --currency
	CEREMONY_OVERRIDE → --ceremony-override
	LOG_LEVEL         → --log-level
	LOG_FORMAT        → --log-format

CLI flags take precedence over environment variables, and environment
variables take precedence over .env.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT must be provided
  - AWARD_SLUG_SALT must be provided
*/
package cliparse
