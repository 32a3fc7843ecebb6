// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the award voting API server.

Award voting lets organizers run award ceremonies where the public buys
votes for nominees. Each award moves through four phases (upcoming,
voting_open, voting_closed, completed) derived from its voting window and
ceremony date, and each vote order is priced per category.

# Starting the Server

The server reads a .env file if present, then environment variables or
CLI flags:

	ADMIN_KEY_SALT=... AWARD_SLUG_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC
  - AWARD_SLUG_SALT (-slug-salt): Secret for award slug suffixes

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite file
  - PAYMENT_PAGE_URL (-payment-url): Where checkout redirects voters
  - CURRENCY (-currency): Currency code shown with prices (default: USD)
  - CEREMONY_OVERRIDE (-ceremony-override): Past ceremony forces completed (default: true)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - voting: Phase resolution and vote order pricing
  - store: Award, category and nominee persistence
  - payment: Redirect to the external payment page
  - handlers: HTTP request handlers (awards, orders, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: IDs, admin keys and slugs
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
