// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the survey across restarts.

# Drivers

Open selects the driver from the configured type:

  - sqlite: modernc.org/sqlite (pure Go, default, DSN like file:survey.db)
  - postgres: github.com/lib/pq

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - survey_entry: idx (0-based position, primary key), name (unique), votes

# Load and Save

	store := db.NewStore(conn)
	entries, err := store.Load(ctx)
	...
	err = store.Save(ctx, proc.Entries())

Load classifies failures: errors.Is(err, ErrCorruptStore) means the saved
rows cannot form a survey (gaps in idx, empty or duplicate names) and the
server must not start. Any other error means the store was unreachable;
the server starts empty.

Save rewrites the whole table in one transaction.
*/
package db
