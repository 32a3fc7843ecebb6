// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/handlers"
	"github.com/danielhkuo/award-vote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	awardHandler := handlers.NewAwardHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Award administration (requires X-Admin-Key except create)
	mux.HandleFunc("POST /awards", middleware.WithLogging(adminHandler.CreateAward))
	mux.HandleFunc("GET /awards/{id}/admin", middleware.WithLogging(adminHandler.GetAwardAdmin))
	mux.HandleFunc("POST /awards/{id}/categories", middleware.WithLogging(adminHandler.AddCategory))
	mux.HandleFunc("POST /awards/{id}/categories/{categoryID}/nominees", middleware.WithLogging(adminHandler.AddNominee))
	mux.HandleFunc("PATCH /awards/{id}/schedule", middleware.WithLogging(adminHandler.UpdateSchedule))

	// Browsing (public)
	mux.HandleFunc("GET /awards", middleware.WithLogging(awardHandler.ListAwards))
	mux.HandleFunc("GET /awards/{slug}", middleware.WithLogging(awardHandler.GetAward))
	mux.HandleFunc("GET /awards/{slug}/categories/{categoryID}", middleware.WithLogging(awardHandler.GetCategory))

	// Vote orders (public)
	mux.HandleFunc("POST /awards/{slug}/orders/quote", middleware.WithLogging(orderHandler.Quote))
	mux.HandleFunc("POST /awards/{slug}/orders/checkout", middleware.WithLogging(orderHandler.Checkout))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("award-vote API v1"))
	})

	return mux
}
