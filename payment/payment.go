// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package payment hands priced vote orders off to the external payment page.
//
// Nothing here charges money. The amount in the redirect is advisory and the
// payment side re-derives it before charging.
package payment

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/danielhkuo/award-vote/voting"
)

var ErrNoPaymentPage = errors.New("payment page URL is not configured")

// Handoff builds redirects to the payment page
type Handoff struct {
	PageURL  string
	Currency string
}

// Redirect is where the voter is sent to pay for an order
type Redirect struct {
	Reference string
	URL       string
}

// Prepare assigns a fresh reference to the order and encodes it into the
// payment page URL, keeping any query parameters already on PageURL.
func (h Handoff) Prepare(order voting.VoteOrder) (Redirect, error) {
	if h.PageURL == "" {
		return Redirect{}, ErrNoPaymentPage
	}
	u, err := url.Parse(h.PageURL)
	if err != nil {
		return Redirect{}, fmt.Errorf("invalid payment page URL: %w", err)
	}

	reference := uuid.NewString()

	q := u.Query()
	q.Set("reference", reference)
	q.Set("award_id", order.AwardID)
	q.Set("category_id", order.CategoryID)
	q.Set("nominee_id", order.NomineeID)
	q.Set("quantity", strconv.Itoa(order.Quantity))
	q.Set("unit_price", order.UnitPrice.String())
	q.Set("amount", order.Total.String())
	if h.Currency != "" {
		q.Set("currency", h.Currency)
	}
	u.RawQuery = q.Encode()

	return Redirect{Reference: reference, URL: u.String()}, nil
}
