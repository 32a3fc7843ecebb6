// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the award voting API.

# Handler Types

Each handler is a struct with store, config and clock dependencies:

  - AwardHandler: Award listing, award detail and category pages
  - OrderHandler: Vote order pricing and payment handoff
  - AdminHandler: Award setup and scheduling

Handlers are created via constructor functions that accept *sql.DB and Config:

	awardHandler := handlers.NewAwardHandler(db, cfg)

# Phases

Every response that describes an award carries its phase, resolved at
request time from the voting window and ceremony date:

	upcoming → voting_open → voting_closed → completed

Phases are never stored. Setting CEREMONY_OVERRIDE=false stops a past
ceremony date from forcing completed.

# Browsing

	GET /awards                               → ListAwards
	GET /awards/{slug}                        → GetAward
	GET /awards/{slug}/categories/{categoryID} → GetCategory

Per-nominee vote counts are only included when the award has show_results
set or is completed.

# Vote Orders

	POST /awards/{slug}/orders/quote    → Quote (any phase)
	POST /awards/{slug}/orders/checkout → Checkout (voting_open only, 409 otherwise)

Invalid orders return 400 with a kind of invalid_quantity or
nominee_not_in_category. Quantities are never clamped.

# Administration

	POST  /awards                                          → CreateAward (returns admin_key)
	GET   /awards/{id}/admin                               → GetAwardAdmin
	POST  /awards/{id}/categories                          → AddCategory
	POST  /awards/{id}/categories/{categoryID}/nominees    → AddNominee
	PATCH /awards/{id}/schedule                            → UpdateSchedule

Admin operations require the X-Admin-Key header.
*/
package handlers
