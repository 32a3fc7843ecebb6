// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the award voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health - 200 "OK" when the database answers a ping

Administration (requires X-Admin-Key, except create):

	POST  /awards                                       - Create award
	GET   /awards/{id}/admin                            - Award with vote counts
	POST  /awards/{id}/categories                       - Add category
	POST  /awards/{id}/categories/{categoryID}/nominees - Add nominee
	PATCH /awards/{id}/schedule                         - Set window, ceremony, status

Browsing (public, uses slug):

	GET /awards                               - Award cards with phase
	GET /awards/{slug}                        - Award with categories
	GET /awards/{slug}/categories/{categoryID} - Nominee selection page

Vote orders (public):

	POST /awards/{slug}/orders/quote    - Price an order
	POST /awards/{slug}/orders/checkout - Price and hand off to payment

All routes except /health and / are wrapped with middleware.WithLogging.
*/
package router
