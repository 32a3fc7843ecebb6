// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"strings"
	"time"
)

// Award is one award ceremony with its voting window and categories.
type Award struct {
	ID           string
	Title        string
	Slug         string
	CeremonyDate *time.Time
	VotingStart  *time.Time
	VotingEnd    *time.Time
	Status       string
	ShowResults  bool
	TotalVotes   int64
	Categories   []Category
}

// Category is a votable grouping of nominees with its own price
type Category struct {
	ID          string
	AwardID     string
	Name        string
	Description string
	CostPerVote Amount
	Nominees    []Nominee
}

// Nominee is one candidate in a category. VoteCount is display-only.
type Nominee struct {
	ID          string
	CategoryID  string
	Name        string
	NomineeCode string
	ImageURL    string
	VoteCount   int64
}

// Category returns the category with the given ID
func (a Award) Category(id string) (Category, bool) {
	for _, c := range a.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Nominee returns the nominee with the given ID
func (c Category) Nominee(id string) (Nominee, bool) {
	if id == "" {
		return Nominee{}, false
	}
	for _, n := range c.Nominees {
		if n.ID == id {
			return n, true
		}
	}
	return Nominee{}, false
}

// UnitPrice is CostPerVote, or one currency unit when no positive price is set.
func (c Category) UnitPrice() Amount {
	if c.CostPerVote > 0 {
		return c.CostPerVote
	}
	return DefaultUnitPrice
}

// ValidateWindow checks that a voting window, when fully set, does not end
// before it starts.
func ValidateWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return ErrInvalidVotingWindow
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses a timestamp from the award data source.
// Empty or malformed input yields nil; it never fails.
// Values without a zone are taken as UTC.
func ParseTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// FormatTime is the inverse of ParseTime. A nil time formats as "".
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
