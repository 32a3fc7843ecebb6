// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/award-vote/auth"
	"github.com/danielhkuo/award-vote/cliparse"
	"github.com/danielhkuo/award-vote/db"
	"github.com/danielhkuo/award-vote/voting"
)

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseURL:      "file:test.db",
		DatabaseType:     cliparse.DatabaseSQLite,
		AdminKeySalt:     "test-admin-salt",
		AwardSlugSalt:    "test-slug-salt",
		PaymentPageURL:   "https://pay.example.com/checkout",
		Currency:         "GHS",
		CeremonyOverride: true,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// TestAward describes an award row; zero values are left empty
type TestAward struct {
	Title        string
	VotingStart  string
	VotingEnd    string
	CeremonyDate string
	Status       string
	ShowResults  bool
	TotalVotes   int64
}

// CreateTestAward inserts an award and returns its ID, admin key and slug.
// Timestamps are stored verbatim so malformed values can be tested.
func CreateTestAward(t *testing.T, conn *sql.DB, cfg cliparse.Config, a TestAward) (awardID, adminKey, slug string) {
	t.Helper()

	if a.Title == "" {
		a.Title = "Test Awards"
	}
	awardID = auth.NewID()
	adminKey = auth.GenerateAdminKey(awardID, cfg.AdminKeySalt)
	slug = auth.AwardSlug(a.Title, awardID, cfg.AwardSlugSalt)

	_, err := conn.Exec(`
		INSERT INTO award (id, slug, title, ceremony_date, voting_start, voting_end, status, show_results, total_votes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, awardID, slug, a.Title, nullable(a.CeremonyDate), nullable(a.VotingStart), nullable(a.VotingEnd),
		a.Status, a.ShowResults, a.TotalVotes, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test award: %v", err)
	}

	return awardID, adminKey, slug
}

// AddTestCategory adds a category to an award and returns the category ID
func AddTestCategory(t *testing.T, conn *sql.DB, awardID, name string, costPerVote voting.Amount) string {
	t.Helper()

	var position int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM category WHERE award_id = $1`, awardID).Scan(&position); err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}

	categoryID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO category (id, award_id, name, description, cost_per_vote, position)
		VALUES ($1, $2, $3, '', $4, $5)
	`, categoryID, awardID, name, int64(costPerVote), position)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return categoryID
}

// AddTestNominee adds a nominee to a category and returns the nominee ID
func AddTestNominee(t *testing.T, conn *sql.DB, categoryID, name string, voteCount int64) string {
	t.Helper()

	var position int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM nominee WHERE category_id = $1`, categoryID).Scan(&position); err != nil {
		t.Fatalf("Failed to count nominees: %v", err)
	}

	nomineeID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO nominee (id, category_id, name, vote_count, position)
		VALUES ($1, $2, $3, $4, $5)
	`, nomineeID, categoryID, name, voteCount, position)
	if err != nil {
		t.Fatalf("Failed to create test nominee: %v", err)
	}

	return nomineeID
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustTime parses an RFC 3339 timestamp or fails the test
func MustTime(t *testing.T, raw string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t.Fatalf("bad time %q: %v", raw, err)
	}
	return ts
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
