// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional .env file is read first with LoadEnvFile; variables already
present in the environment are left alone.

# CLI Flags

	-p              HTTP/WebSocket port (default: 3318)
	-tcp            Line protocol TCP port (default: 0, disabled)
	-t              Database type, sqlite or postgres (default: sqlite)
	-d              Database URL (default: file:survey.db for sqlite)
	-m              Maximum number of entries (default: 20)
	-backlog        Outbound messages buffered per connection (default: 64)
	-save-interval  Periodic save interval (default: 0, save on shutdown only)
	-admin-salt     Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	TCP_PORT       → -tcp
	DATABASE_TYPE  → -t
	DATABASE_URL   → -d
	MAX_ENTRIES    → -m
	SEND_BACKLOG   → -backlog
	SAVE_INTERVAL  → -save-interval
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - a numeric variable does not parse
  - max entries or the send backlog is not positive
  - the database type is neither sqlite nor postgres
  - postgres is selected without a database URL
*/
package cliparse
