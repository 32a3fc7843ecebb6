// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/middleware"
	"github.com/danielhkuo/award-vote/models"
	"github.com/danielhkuo/award-vote/store"
	"github.com/danielhkuo/award-vote/voting"
)

type AwardHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	resolver voting.Resolver
	now      func() time.Time
}

func NewAwardHandler(db *sql.DB, cfg cliparse.Config) *AwardHandler {
	return &AwardHandler{
		store:    store.New(db),
		cfg:      cfg,
		resolver: resolverFor(cfg),
		now:      time.Now,
	}
}

// ListAwards handles GET /awards
func (h *AwardHandler) ListAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := h.store.ListAwards(r.Context())
	if err != nil {
		slog.Error("failed to list awards", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.now()
	cards := make([]models.AwardCard, 0, len(awards))
	for _, a := range awards {
		cards = append(cards, awardCard(a, h.resolver.Resolve(a, now), now))
	}

	middleware.JSONResponse(w, http.StatusOK, models.AwardListResponse{Awards: cards})
}

// GetAward handles GET /awards/{slug}
func (h *AwardHandler) GetAward(w http.ResponseWriter, r *http.Request) {
	award, ok := h.loadBySlug(w, r)
	if !ok {
		return
	}

	now := h.now()
	phase := h.resolver.Resolve(award, now)

	middleware.JSONResponse(w, http.StatusOK,
		awardDetail(award, phase, now, h.cfg.Currency, resultsVisible(award, phase)))
}

// GetCategory handles GET /awards/{slug}/categories/{categoryID}
func (h *AwardHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	award, ok := h.loadBySlug(w, r)
	if !ok {
		return
	}

	category, found := award.Category(r.PathValue("categoryID"))
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	now := h.now()
	phase := h.resolver.Resolve(award, now)

	middleware.JSONResponse(w, http.StatusOK, models.CategoryPage{
		Award:      awardCard(award, phase, now),
		Category:   categoryView(category, h.cfg.Currency, resultsVisible(award, phase)),
		VotingOpen: phase.AcceptsVotes(),
		Packages:   slices.Clone(voting.VotePackages),
	})
}

func (h *AwardHandler) loadBySlug(w http.ResponseWriter, r *http.Request) (voting.Award, bool) {
	return loadAwardBySlug(h.store, w, r)
}

// loadAwardBySlug writes the error response itself and reports false
// when the award cannot be returned.
func loadAwardBySlug(s *store.Store, w http.ResponseWriter, r *http.Request) (voting.Award, bool) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return voting.Award{}, false
	}

	award, err := s.GetAwardBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return voting.Award{}, false
	}
	if err != nil {
		slog.Error("failed to load award", "slug", slug, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return voting.Award{}, false
	}
	return award, true
}
