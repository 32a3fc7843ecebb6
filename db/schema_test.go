// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestOpenAndCreateSchema(t *testing.T) {
	conn, err := Open("sqlite", filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	// Twice, to check it is idempotent
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema (run %d): %v", i+1, err)
		}
	}

	for _, table := range []string{"award", "category", "nominee"} {
		var n int
		err := conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&n)
		if err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if n != 1 {
			t.Errorf("Expected table %s to exist", table)
		}
	}
}

func TestForeignKeysCascade(t *testing.T) {
	conn, err := Open("sqlite", filepath.Join(t.TempDir(), "fk.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()
	if err := CreateSchema(conn); err != nil {
		t.Fatal(err)
	}

	if _, err := conn.Exec(`INSERT INTO category (id, award_id, name) VALUES ('c1', 'missing', 'Orphan')`); err == nil {
		t.Error("Expected foreign key violation for unknown award")
	}

	if _, err := conn.Exec(`INSERT INTO award (id, slug, title) VALUES ('a1', 'a1', 'Award')`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`INSERT INTO category (id, award_id, name) VALUES ('c1', 'a1', 'Cat')`); err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec(`DELETE FROM award WHERE id = 'a1'`); err != nil {
		t.Fatal(err)
	}

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM category`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected cascade delete, %d categories left", n)
	}
}

func TestOpenUnsupported(t *testing.T) {
	if _, err := Open("mysql", "x"); err == nil {
		t.Error("Expected error for unsupported type")
	}
}
