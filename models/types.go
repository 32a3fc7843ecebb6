// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"

	"github.com/danielhkuo/award-vote/voting"
)

// Request types

type CreateAwardRequest struct {
	Title        string `json:"title"`
	CeremonyDate string `json:"ceremony_date"`
	VotingStart  string `json:"voting_start"`
	VotingEnd    string `json:"voting_end"`
	Status       string `json:"status"`
	ShowResults  bool   `json:"show_results"`
}

type AddCategoryRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CostPerVote voting.Amount `json:"cost_per_vote"`
}

type AddNomineeRequest struct {
	Name        string `json:"name"`
	NomineeCode string `json:"nominee_code"`
	ImageURL    string `json:"image_url"`
}

// UpdateScheduleRequest is a partial update: omitted fields keep their
// stored value and an empty string clears a timestamp or status.
type UpdateScheduleRequest struct {
	CeremonyDate *string `json:"ceremony_date"`
	VotingStart  *string `json:"voting_start"`
	VotingEnd    *string `json:"voting_end"`
	Status       *string `json:"status"`
	ShowResults  *bool   `json:"show_results"`
}

type OrderRequest struct {
	CategoryID string      `json:"category_id"`
	NomineeID  string      `json:"nominee_id"`
	Quantity   RawQuantity `json:"quantity"`
}

// RawQuantity keeps the quantity exactly as sent ("10", 10, 2.5, "abc")
// so it can be validated instead of silently coerced.
type RawQuantity string

func (q *RawQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = RawQuantity(s)
		return nil
	}
	if string(data) == "null" {
		*q = ""
		return nil
	}
	*q = RawQuantity(data)
	return nil
}

// Response types

type CreateAwardResponse struct {
	AwardID  string `json:"award_id"`
	Slug     string `json:"slug"`
	AdminKey string `json:"admin_key"`
}

type AddCategoryResponse struct {
	CategoryID string `json:"category_id"`
}

type AddNomineeResponse struct {
	NomineeID string `json:"nominee_id"`
}

// AwardCard is the list-view summary of an award
type AwardCard struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Slug              string       `json:"slug"`
	Phase             voting.Phase `json:"phase"`
	PhaseDetail       string       `json:"phase_detail"`
	CeremonyDate      string       `json:"ceremony_date,omitempty"`
	VotingStart       string       `json:"voting_start,omitempty"`
	VotingEnd         string       `json:"voting_end,omitempty"`
	ShowResults       bool         `json:"show_results"`
	TotalVotes        int64        `json:"total_votes"`
	TotalVotesDisplay string       `json:"total_votes_display"`
}

type AwardListResponse struct {
	Awards []AwardCard `json:"awards"`
}

type NomineeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NomineeCode string `json:"nominee_code,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	VoteCount   *int64 `json:"vote_count,omitempty"`
}

type CategoryView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	CostPerVote voting.Amount `json:"cost_per_vote"`
	UnitPrice   voting.Amount `json:"unit_price"`
	Currency    string        `json:"currency"`
	Nominees    []NomineeView `json:"nominees"`
}

type AwardDetail struct {
	Award      AwardCard      `json:"award"`
	Categories []CategoryView `json:"categories"`
}

// CategoryPage backs the nominee selection screen
type CategoryPage struct {
	Award      AwardCard    `json:"award"`
	Category   CategoryView `json:"category"`
	VotingOpen bool         `json:"voting_open"`
	Packages   []int        `json:"packages"`
}

type VoteOrderResponse struct {
	AwardID    string        `json:"award_id"`
	CategoryID string        `json:"category_id"`
	NomineeID  string        `json:"nominee_id"`
	Quantity   int           `json:"quantity"`
	UnitPrice  voting.Amount `json:"unit_price"`
	Total      voting.Amount `json:"total"`
	Currency   string        `json:"currency"`
}

type QuoteResponse struct {
	Order VoteOrderResponse `json:"order"`
	Phase voting.Phase      `json:"phase"`
}

type CheckoutResponse struct {
	Reference  string            `json:"reference"`
	PaymentURL string            `json:"payment_url"`
	Order      VoteOrderResponse `json:"order"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}
