// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/award-vote/voting"
)

var ErrNotFound = errors.New("not found")

// Store reads and writes award aggregates.
// Queries use $N placeholders, which both lib/pq and modernc sqlite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Schedule is the mutable timing and visibility of an award
type Schedule struct {
	CeremonyDate *time.Time
	VotingStart  *time.Time
	VotingEnd    *time.Time
	Status       string
	ShowResults  bool
}

// ---------- Awards ----------

func (s *Store) CreateAward(ctx context.Context, a voting.Award) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO award (id, slug, title, ceremony_date, voting_start, voting_end, status, show_results, total_votes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.Slug, a.Title,
		nullableTime(a.CeremonyDate), nullableTime(a.VotingStart), nullableTime(a.VotingEnd),
		a.Status, a.ShowResults, a.TotalVotes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert award: %w", err)
	}
	return nil
}

// SlugTaken reports whether an award already uses slug
func (s *Store) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var taken bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM award WHERE slug = $1)`, slug).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return taken, nil
}

func (s *Store) UpdateSchedule(ctx context.Context, awardID string, sched Schedule) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE award
		SET ceremony_date = $1, voting_start = $2, voting_end = $3, status = $4, show_results = $5
		WHERE id = $6
	`, nullableTime(sched.CeremonyDate), nullableTime(sched.VotingStart), nullableTime(sched.VotingEnd),
		sched.Status, sched.ShowResults, awardID)
	if err != nil {
		return fmt.Errorf("failed to update award schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAwards returns award headers, newest first, without categories.
func (s *Store) ListAwards(ctx context.Context) ([]voting.Award, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, ceremony_date, voting_start, voting_end, status, show_results, total_votes
		FROM award
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query awards: %w", err)
	}
	defer rows.Close()

	awards := []voting.Award{}
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, err
		}
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return awards, nil
}

// GetAwardBySlug loads the full aggregate: award, categories and nominees.
func (s *Store) GetAwardBySlug(ctx context.Context, slug string) (voting.Award, error) {
	return s.getAward(ctx, `slug = $1`, slug)
}

func (s *Store) GetAwardByID(ctx context.Context, id string) (voting.Award, error) {
	return s.getAward(ctx, `id = $1`, id)
}

func (s *Store) getAward(ctx context.Context, where string, arg string) (voting.Award, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, ceremony_date, voting_start, voting_end, status, show_results, total_votes
		FROM award
		WHERE `+where, arg)
	a, err := scanAward(row)
	if err == sql.ErrNoRows {
		return voting.Award{}, ErrNotFound
	}
	if err != nil {
		return voting.Award{}, err
	}

	a.Categories, err = s.loadCategories(ctx, a.ID)
	if err != nil {
		return voting.Award{}, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAward(row scanner) (voting.Award, error) {
	var a voting.Award
	var ceremony, start, end sql.NullString
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &ceremony, &start, &end, &a.Status, &a.ShowResults, &a.TotalVotes)
	if err != nil {
		if err == sql.ErrNoRows {
			return voting.Award{}, err
		}
		return voting.Award{}, fmt.Errorf("failed to scan award: %w", err)
	}
	a.CeremonyDate = voting.ParseTime(ceremony.String)
	a.VotingStart = voting.ParseTime(start.String)
	a.VotingEnd = voting.ParseTime(end.String)
	return a, nil
}

// ---------- Categories ----------

func (s *Store) AddCategory(ctx context.Context, c voting.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM award WHERE id = $1)`, c.AwardID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check award: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	var position int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), -1) + 1 FROM category WHERE award_id = $1
	`, c.AwardID).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to compute category position: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO category (id, award_id, name, description, cost_per_vote, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.AwardID, c.Name, c.Description, int64(c.CostPerVote), position)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return tx.Commit()
}

func (s *Store) loadCategories(ctx context.Context, awardID string) ([]voting.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, award_id, name, description, cost_per_vote
		FROM category
		WHERE award_id = $1
		ORDER BY position, id
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := []voting.Category{}
	index := make(map[string]int)
	for rows.Next() {
		var c voting.Category
		var cost int64
		if err := rows.Scan(&c.ID, &c.AwardID, &c.Name, &c.Description, &cost); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.CostPerVote = voting.Amount(cost)
		c.Nominees = []voting.Nominee{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// SQLite runs on a single connection, so close before the next query
	rows.Close()

	nominees, err := s.db.QueryContext(ctx, `
		SELECT n.id, n.category_id, n.name, n.nominee_code, n.image_url, n.vote_count
		FROM nominee n
		JOIN category c ON c.id = n.category_id
		WHERE c.award_id = $1
		ORDER BY n.position, n.id
	`, awardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer nominees.Close()

	for nominees.Next() {
		var n voting.Nominee
		if err := nominees.Scan(&n.ID, &n.CategoryID, &n.Name, &n.NomineeCode, &n.ImageURL, &n.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan nominee: %w", err)
		}
		if i, ok := index[n.CategoryID]; ok {
			categories[i].Nominees = append(categories[i].Nominees, n)
		}
	}
	if err := nominees.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryAwardID returns the award a category belongs to
func (s *Store) CategoryAwardID(ctx context.Context, categoryID string) (string, error) {
	var awardID string
	err := s.db.QueryRowContext(ctx, `SELECT award_id FROM category WHERE id = $1`, categoryID).Scan(&awardID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query category: %w", err)
	}
	return awardID, nil
}

// ---------- Nominees ----------

func (s *Store) AddNominee(ctx context.Context, n voting.Nominee) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), -1) + 1 FROM nominee WHERE category_id = $1
	`, n.CategoryID).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to compute nominee position: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO nominee (id, category_id, name, nominee_code, image_url, vote_count, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.CategoryID, n.Name, n.NomineeCode, n.ImageURL, n.VoteCount, position)
	if err != nil {
		return fmt.Errorf("failed to insert nominee: %w", err)
	}
	return tx.Commit()
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return voting.FormatTime(t)
}
