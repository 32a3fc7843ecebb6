// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the database type:

	conn, err := db.Open("postgres", "postgres://...") // github.com/lib/pq
	conn, err := db.Open("sqlite", "file:awards.db")  // modernc.org/sqlite

SQLite connections are limited to one and have foreign keys enabled.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both PostgreSQL and SQLite.

# Tables

  - award: Award metadata, voting window, ceremony date
  - category: Votable categories with cost per vote (minor units)
  - nominee: Nominees per category with display vote counts

# Relationships

	award 1──* category
	category 1──* nominee

All foreign keys use ON DELETE CASCADE. Categories and nominees keep
insertion order through their position column.
*/
package db
