// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/middleware"
	"github.com/danielhkuo/award-vote/models"
	"github.com/danielhkuo/award-vote/payment"
	"github.com/danielhkuo/award-vote/store"
	"github.com/danielhkuo/award-vote/voting"
)

type OrderHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	resolver voting.Resolver
	handoff  payment.Handoff
	now      func() time.Time
}

func NewOrderHandler(db *sql.DB, cfg cliparse.Config) *OrderHandler {
	return &OrderHandler{
		store:    store.New(db),
		cfg:      cfg,
		resolver: resolverFor(cfg),
		handoff:  payment.Handoff{PageURL: cfg.PaymentPageURL, Currency: cfg.Currency},
		now:      time.Now,
	}
}

// Quote handles POST /awards/{slug}/orders/quote.
// Pricing works in every phase so the UI can show totals before voting opens.
func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	award, category, req, ok := h.parseOrder(w, r)
	if !ok {
		return
	}

	order, ok := priceOrder(w, category, req)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuoteResponse{
		Order: orderResponse(order, h.cfg.Currency),
		Phase: h.resolver.Resolve(award, h.now()),
	})
}

// Checkout handles POST /awards/{slug}/orders/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	award, category, req, ok := h.parseOrder(w, r)
	if !ok {
		return
	}

	phase := h.resolver.Resolve(award, h.now())
	if !phase.AcceptsVotes() {
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("Voting is not open for this award (phase: %s)", phase))
		return
	}

	order, ok := priceOrder(w, category, req)
	if !ok {
		return
	}

	redirect, err := h.handoff.Prepare(order)
	if err != nil {
		slog.Error("failed to prepare payment handoff", "award_id", award.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Payment is unavailable")
		return
	}

	slog.Info("checkout prepared",
		"reference", redirect.Reference,
		"award_id", order.AwardID,
		"category_id", order.CategoryID,
		"nominee_id", order.NomineeID,
		"quantity", order.Quantity,
		"total", order.Total.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CheckoutResponse{
		Reference:  redirect.Reference,
		PaymentURL: redirect.URL,
		Order:      orderResponse(order, h.cfg.Currency),
	})
}

func (h *OrderHandler) parseOrder(w http.ResponseWriter, r *http.Request) (voting.Award, voting.Category, models.OrderRequest, bool) {
	var req models.OrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return voting.Award{}, voting.Category{}, req, false
	}
	if req.CategoryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category_id is required")
		return voting.Award{}, voting.Category{}, req, false
	}

	award, ok := loadAwardBySlug(h.store, w, r)
	if !ok {
		return voting.Award{}, voting.Category{}, req, false
	}

	category, found := award.Category(req.CategoryID)
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return voting.Award{}, voting.Category{}, req, false
	}

	return award, category, req, true
}

func priceOrder(w http.ResponseWriter, category voting.Category, req models.OrderRequest) (voting.VoteOrder, bool) {
	quantity, err := voting.ParseQuantity(string(req.Quantity))
	if err == nil {
		var order voting.VoteOrder
		order, err = voting.PriceOrder(category, req.NomineeID, quantity)
		if err == nil {
			return order, true
		}
	}

	var verr *voting.ValidationError
	if errors.As(err, &verr) {
		middleware.ValidationErrorResponse(w, string(verr.Kind), verr.Message)
		return voting.VoteOrder{}, false
	}
	slog.Error("failed to price order", "category_id", category.ID, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to price order")
	return voting.VoteOrder{}, false
}
