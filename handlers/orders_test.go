// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/models"
	"github.com/danielhkuo/award-vote/testutil"
	"github.com/danielhkuo/award-vote/voting"
)

type orderFixture struct {
	slug        string
	categoryID  string
	nomineeID   string
	otherNominee string
}

// setupOrderFixture creates an award with two categories priced at 1.50 and
// 0.00, each with one nominee.
func setupOrderFixture(t *testing.T, db *sql.DB, cfg cliparse.Config, award testutil.TestAward) orderFixture {
	t.Helper()
	awardID, _, slug := testutil.CreateTestAward(t, db, cfg, award)
	categoryID := testutil.AddTestCategory(t, db, awardID, "Best Artist", 150)
	nomineeID := testutil.AddTestNominee(t, db, categoryID, "Ama", 0)
	otherCategory := testutil.AddTestCategory(t, db, awardID, "Best Song", 0)
	other := testutil.AddTestNominee(t, db, otherCategory, "Track A", 0)
	return orderFixture{slug: slug, categoryID: categoryID, nomineeID: nomineeID, otherNominee: other}
}

func newTestOrderHandler(t *testing.T, db *sql.DB, cfg cliparse.Config) *OrderHandler {
	h := NewOrderHandler(db, cfg)
	h.now = testutil.FixedClock(testutil.MustTime(t, testNow))
	return h
}

var openWindow = testutil.TestAward{
	Title:       "Music Awards",
	VotingStart: "2025-01-01T00:00Z",
	VotingEnd:   "2025-01-31T23:59Z",
}

func orderRequest(slug, action string, body map[string]any) *http.Request {
	req := testutil.MakeRequest("POST", "/awards/"+slug+"/orders/"+action, body, nil)
	req.SetPathValue("slug", slug)
	return req
}

func TestQuote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	fx := setupOrderFixture(t, db, cfg, openWindow)
	handler := newTestOrderHandler(t, db, cfg)

	testCases := []struct {
		name         string
		body         map[string]any
		expectedCode int
		expectedKind string
		expectedSum  voting.Amount
	}{
		{
			name:         "ten votes at 1.50",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 10},
			expectedCode: http.StatusOK,
			expectedSum:  1500,
		},
		{
			name:         "quantity as string",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": "50"},
			expectedCode: http.StatusOK,
			expectedSum:  7500,
		},
		{
			name:         "fractional quantity",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 2.5},
			expectedCode: http.StatusBadRequest,
			expectedKind: "invalid_quantity",
		},
		{
			name:         "zero quantity",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 0},
			expectedCode: http.StatusBadRequest,
			expectedKind: "invalid_quantity",
		},
		{
			name:         "missing quantity",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.nomineeID},
			expectedCode: http.StatusBadRequest,
			expectedKind: "invalid_quantity",
		},
		{
			name:         "no nominee selected",
			body:         map[string]any{"category_id": fx.categoryID, "quantity": 5},
			expectedCode: http.StatusBadRequest,
			expectedKind: "nominee_not_in_category",
		},
		{
			name:         "nominee from another category",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": fx.otherNominee, "quantity": 5},
			expectedCode: http.StatusBadRequest,
			expectedKind: "nominee_not_in_category",
		},
		{
			name:         "invalid quantity wins over bad nominee",
			body:         map[string]any{"category_id": fx.categoryID, "nominee_id": "nobody", "quantity": -3},
			expectedCode: http.StatusBadRequest,
			expectedKind: "invalid_quantity",
		},
		{
			name:         "unknown category",
			body:         map[string]any{"category_id": "nope", "nominee_id": fx.nomineeID, "quantity": 1},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing category",
			body:         map[string]any{"nominee_id": fx.nomineeID, "quantity": 1},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Quote(w, orderRequest(fx.slug, "quote", tc.body))

			testutil.AssertStatus(t, w, tc.expectedCode)

			switch {
			case tc.expectedCode == http.StatusOK:
				var resp models.QuoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Order.Total != tc.expectedSum {
					t.Errorf("Expected total %s, got %s", tc.expectedSum, resp.Order.Total)
				}
				if resp.Order.UnitPrice != 150 || resp.Order.Currency != "GHS" {
					t.Errorf("Unexpected price %s %s", resp.Order.UnitPrice, resp.Order.Currency)
				}
				if resp.Phase != voting.PhaseVotingOpen {
					t.Errorf("Expected phase voting_open, got %s", resp.Phase)
				}
			case tc.expectedKind != "":
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Kind != tc.expectedKind {
					t.Errorf("Expected kind %s, got %q", tc.expectedKind, resp.Kind)
				}
			}
		})
	}
}

func TestQuote_DefaultUnitPrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	awardID, _, slug := testutil.CreateTestAward(t, db, cfg, openWindow)
	categoryID := testutil.AddTestCategory(t, db, awardID, "Free Category", 0)
	nomineeID := testutil.AddTestNominee(t, db, categoryID, "Kofi", 0)

	handler := newTestOrderHandler(t, db, cfg)
	w := httptest.NewRecorder()
	handler.Quote(w, orderRequest(slug, "quote", map[string]any{
		"category_id": categoryID, "nominee_id": nomineeID, "quantity": 5,
	}))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.QuoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Order.UnitPrice != 100 || resp.Order.Total != 500 {
		t.Errorf("Expected 5 x 1.00 = 5.00, got %s x %d = %s",
			resp.Order.UnitPrice, resp.Order.Quantity, resp.Order.Total)
	}
}

func TestQuote_AllowedBeforeVotingOpens(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	fx := setupOrderFixture(t, db, cfg, testutil.TestAward{VotingStart: "2025-02-01", VotingEnd: "2025-02-10"})
	handler := newTestOrderHandler(t, db, cfg)

	w := httptest.NewRecorder()
	handler.Quote(w, orderRequest(fx.slug, "quote", map[string]any{
		"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 1,
	}))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.QuoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Phase != voting.PhaseUpcoming {
		t.Errorf("Expected phase upcoming, got %s", resp.Phase)
	}
}

func TestCheckout(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	fx := setupOrderFixture(t, db, cfg, openWindow)
	handler := newTestOrderHandler(t, db, cfg)

	w := httptest.NewRecorder()
	handler.Checkout(w, orderRequest(fx.slug, "checkout", map[string]any{
		"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 10,
	}))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CheckoutResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Reference == "" {
		t.Error("Expected a payment reference")
	}
	if resp.Order.Total != 1500 {
		t.Errorf("Expected total 15.00, got %s", resp.Order.Total)
	}

	u, err := url.Parse(resp.PaymentURL)
	if err != nil {
		t.Fatalf("Invalid payment URL: %v", err)
	}
	q := u.Query()
	if u.Host != "pay.example.com" {
		t.Errorf("Unexpected payment host %s", u.Host)
	}
	if q.Get("amount") != "15.00" || q.Get("currency") != "GHS" || q.Get("quantity") != "10" {
		t.Errorf("Unexpected payment query %s", u.RawQuery)
	}
	if q.Get("reference") != resp.Reference || q.Get("nominee_id") != fx.nomineeID {
		t.Errorf("Payment query does not match order: %s", u.RawQuery)
	}
}

func TestCheckout_RejectedOutsideVotingWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	testCases := []struct {
		name  string
		award testutil.TestAward
	}{
		{"upcoming", testutil.TestAward{VotingStart: "2025-02-01", VotingEnd: "2025-02-10"}},
		{"closed", testutil.TestAward{VotingStart: "2024-12-01", VotingEnd: "2024-12-31"}},
		{"completed", testutil.TestAward{VotingStart: "2025-01-01", VotingEnd: "2025-01-31", CeremonyDate: "2025-01-14"}},
		{"no schedule", testutil.TestAward{}},
	}

	handler := newTestOrderHandler(t, db, cfg)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := setupOrderFixture(t, db, cfg, tc.award)

			w := httptest.NewRecorder()
			handler.Checkout(w, orderRequest(fx.slug, "checkout", map[string]any{
				"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 1,
			}))

			testutil.AssertStatus(t, w, http.StatusConflict)
		})
	}
}

func TestCheckout_ValidationStillApplies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()

	fx := setupOrderFixture(t, db, cfg, openWindow)
	handler := newTestOrderHandler(t, db, cfg)

	w := httptest.NewRecorder()
	handler.Checkout(w, orderRequest(fx.slug, "checkout", map[string]any{
		"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": "abc",
	}))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != string(voting.InvalidQuantity) {
		t.Errorf("Expected invalid_quantity, got %q", resp.Kind)
	}
}

func TestCheckout_NoPaymentPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	cfg := testutil.GetTestConfig()
	cfg.PaymentPageURL = ""

	fx := setupOrderFixture(t, db, cfg, openWindow)
	handler := newTestOrderHandler(t, db, cfg)

	w := httptest.NewRecorder()
	handler.Checkout(w, orderRequest(fx.slug, "checkout", map[string]any{
		"category_id": fx.categoryID, "nominee_id": fx.nomineeID, "quantity": 1,
	}))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestQuote_AwardNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := newTestOrderHandler(t, db, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.Quote(w, orderRequest("missing", "quote", map[string]any{"category_id": "c", "quantity": 1}))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
