// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

Domain types (Award, Category, Nominee, VoteOrder) live in package voting;
this package only shapes them for JSON.

# Request Types

  - CreateAwardRequest: title, ceremony_date, voting_start, voting_end, status, show_results
  - AddCategoryRequest: name, description, cost_per_vote
  - AddNomineeRequest: name, nominee_code, image_url
  - UpdateScheduleRequest: ceremony_date, voting_start, voting_end, status, show_results
    (all optional; omitted fields are left unchanged, "" clears)
  - OrderRequest: category_id, nominee_id, quantity

Quantity is decoded as RawQuantity so "2.5" or "abc" reach the validator
unchanged.

# Response Types

  - CreateAwardResponse: award_id, slug, admin_key
  - AwardListResponse: list of AwardCard
  - AwardDetail: AwardCard plus categories and nominees
  - CategoryPage: one category with voting_open and vote packages
  - QuoteResponse: priced order and current phase
  - CheckoutResponse: reference, payment_url, order
  - ErrorResponse: error, message, kind

# Money

Prices and totals are voting.Amount values and encode as decimal strings:

	{"unit_price": "1.50", "total": "15.00", "currency": "GHS"}

Vote counts are omitted unless the award shows results or is completed.
*/
package models
