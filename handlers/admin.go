// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/award-vote/auth"
	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/middleware"
	"github.com/danielhkuo/award-vote/models"
	"github.com/danielhkuo/award-vote/store"
	"github.com/danielhkuo/award-vote/voting"
)

const adminKeyHeader = "X-Admin-Key"

type AdminHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	resolver voting.Resolver
	now      func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		store:    store.New(db),
		cfg:      cfg,
		resolver: resolverFor(cfg),
		now:      time.Now,
	}
}

// CreateAward handles POST /awards
func (h *AdminHandler) CreateAward(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAwardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	sched, err := applySchedule(store.Schedule{}, models.UpdateScheduleRequest{
		CeremonyDate: &req.CeremonyDate,
		VotingStart:  &req.VotingStart,
		VotingEnd:    &req.VotingEnd,
		Status:       &req.Status,
		ShowResults:  &req.ShowResults,
	})
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	awardID := auth.NewID()
	slug, err := h.pickSlug(r.Context(), req.Title, awardID)
	if errors.Is(err, errSlugsExhausted) {
		middleware.ErrorResponse(w, http.StatusConflict, "Could not allocate a unique slug for this title")
		return
	}
	if err != nil {
		slog.Error("failed to allocate slug", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create award")
		return
	}

	award := voting.Award{
		ID:           awardID,
		Title:        req.Title,
		Slug:         slug,
		CeremonyDate: sched.CeremonyDate,
		VotingStart:  sched.VotingStart,
		VotingEnd:    sched.VotingEnd,
		Status:       sched.Status,
		ShowResults:  sched.ShowResults,
	}

	if err := h.store.CreateAward(r.Context(), award); err != nil {
		// Lost a race for the slug between pickSlug and the insert
		if taken, _ := h.store.SlugTaken(r.Context(), award.Slug); taken {
			middleware.ErrorResponse(w, http.StatusConflict, "Slug already in use, please retry")
			return
		}
		slog.Error("failed to create award", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create award")
		return
	}

	slog.Info("award created", "award_id", award.ID, "slug", award.Slug)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateAwardResponse{
		AwardID:  award.ID,
		Slug:     award.Slug,
		AdminKey: auth.GenerateAdminKey(award.ID, h.cfg.AdminKeySalt),
	})
}

// GetAwardAdmin handles GET /awards/{id}/admin.
// Vote counts are always included here.
func (h *AdminHandler) GetAwardAdmin(w http.ResponseWriter, r *http.Request) {
	awardID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	award, err := h.store.GetAwardByID(r.Context(), awardID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return
	}
	if err != nil {
		slog.Error("failed to load award", "award_id", awardID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.now()
	middleware.JSONResponse(w, http.StatusOK,
		awardDetail(award, h.resolver.Resolve(award, now), now, h.cfg.Currency, true))
}

// AddCategory handles POST /awards/{id}/categories
func (h *AdminHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	awardID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.AddCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if errors.Is(err, voting.ErrInvalidAmount) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "cost_per_vote must be a non-negative amount with at most two decimals")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	category := voting.Category{
		ID:          auth.NewID(),
		AwardID:     awardID,
		Name:        req.Name,
		Description: req.Description,
		CostPerVote: req.CostPerVote,
	}

	err := h.store.AddCategory(r.Context(), category)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return
	}
	if err != nil {
		slog.Error("failed to add category", "award_id", awardID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	slog.Info("category added", "award_id", awardID, "category_id", category.ID,
		"cost_per_vote", category.CostPerVote.String())

	middleware.JSONResponse(w, http.StatusCreated, models.AddCategoryResponse{
		CategoryID: category.ID,
	})
}

// AddNominee handles POST /awards/{id}/categories/{categoryID}/nominees
func (h *AdminHandler) AddNominee(w http.ResponseWriter, r *http.Request) {
	awardID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	categoryID := r.PathValue("categoryID")

	var req models.AddNomineeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	// The admin key only covers its own award's categories
	owner, err := h.store.CategoryAwardID(r.Context(), categoryID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && owner != awardID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		slog.Error("failed to query category", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	nominee := voting.Nominee{
		ID:          auth.NewID(),
		CategoryID:  categoryID,
		Name:        req.Name,
		NomineeCode: req.NomineeCode,
		ImageURL:    req.ImageURL,
	}
	if err := h.store.AddNominee(r.Context(), nominee); err != nil {
		slog.Error("failed to add nominee", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create nominee")
		return
	}

	slog.Info("nominee added", "award_id", awardID, "category_id", categoryID, "nominee_id", nominee.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddNomineeResponse{
		NomineeID: nominee.ID,
	})
}

// UpdateSchedule handles PATCH /awards/{id}/schedule.
// Only the fields present in the body change.
func (h *AdminHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	awardID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.UpdateScheduleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	current, err := h.store.GetAwardByID(r.Context(), awardID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return
	}
	if err != nil {
		slog.Error("failed to load award", "award_id", awardID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The window check runs on the merged schedule, so a lone voting_end
	// cannot land before the stored voting_start.
	sched, err := applySchedule(scheduleOf(current), req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.store.UpdateSchedule(r.Context(), awardID, sched)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return
	}
	if err != nil {
		slog.Error("failed to update schedule", "award_id", awardID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update schedule")
		return
	}

	slog.Info("schedule updated", "award_id", awardID,
		"voting_start", voting.FormatTime(sched.VotingStart),
		"voting_end", voting.FormatTime(sched.VotingEnd))

	// Reload so the response reflects the resolved phase
	award, err := h.store.GetAwardByID(r.Context(), awardID)
	if err != nil {
		slog.Error("failed to reload award", "award_id", awardID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	now := h.now()
	middleware.JSONResponse(w, http.StatusOK, awardCard(award, h.resolver.Resolve(award, now), now))
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	awardID := r.PathValue("id")
	if awardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "award_id is required")
		return "", false
	}

	if err := auth.ValidateAdminKey(awardID, r.Header.Get(adminKeyHeader), h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return awardID, true
}

var errSlugsExhausted = errors.New("every slug candidate is taken")

// pickSlug returns the first free candidate from auth.AwardSlugs
func (h *AdminHandler) pickSlug(ctx context.Context, title, awardID string) (string, error) {
	for _, slug := range auth.AwardSlugs(title, awardID, h.cfg.AwardSlugSalt) {
		taken, err := h.store.SlugTaken(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slog.Warn("award slug collision", "award_id", awardID, "slug", slug)
	}
	return "", errSlugsExhausted
}

func scheduleOf(a voting.Award) store.Schedule {
	return store.Schedule{
		CeremonyDate: a.CeremonyDate,
		VotingStart:  a.VotingStart,
		VotingEnd:    a.VotingEnd,
		Status:       a.Status,
		ShowResults:  a.ShowResults,
	}
}

// applySchedule overlays the non-nil fields of req on sched and validates
// the result. Unlike reads from the database, malformed timestamps here are
// rejected rather than dropped.
func applySchedule(sched store.Schedule, req models.UpdateScheduleRequest) (store.Schedule, error) {
	var err error
	if req.CeremonyDate != nil {
		if sched.CeremonyDate, err = parseInputTime("ceremony_date", *req.CeremonyDate); err != nil {
			return store.Schedule{}, err
		}
	}
	if req.VotingStart != nil {
		if sched.VotingStart, err = parseInputTime("voting_start", *req.VotingStart); err != nil {
			return store.Schedule{}, err
		}
	}
	if req.VotingEnd != nil {
		if sched.VotingEnd, err = parseInputTime("voting_end", *req.VotingEnd); err != nil {
			return store.Schedule{}, err
		}
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if status != "" && !voting.Phase(status).Valid() {
			return store.Schedule{}, fmt.Errorf("status must be one of upcoming, voting_open, voting_closed, completed")
		}
		sched.Status = status
	}
	if req.ShowResults != nil {
		sched.ShowResults = *req.ShowResults
	}

	if err := voting.ValidateWindow(sched.VotingStart, sched.VotingEnd); err != nil {
		return store.Schedule{}, err
	}
	return sched, nil
}

func parseInputTime(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t := voting.ParseTime(raw)
	if t == nil {
		return nil, fmt.Errorf("%s is not a valid timestamp", field)
	}
	return t, nil
}
