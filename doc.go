// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live survey server.

Clients connect over WebSocket (or plain TCP lines), add named entries
and vote them up or down. Every accepted change is broadcast to all
connected clients in one global order.

# Starting the Server

	go run . -m 10

Or with environment variables:

	MAX_ENTRIES=10 DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Architecture

  - survey: Entry list with capacity, uniqueness and vote counters
  - command: Line protocol parsing and formatting
  - hub: Registry of connected channels and broadcast
  - processor: Serializes commands against the survey and the hub
  - conn: Per-connection send queue over WebSocket or TCP transports
  - server: Connection lifecycle and the TCP accept loop
  - handlers: HTTP request handlers (WebSocket upgrade, snapshot, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Response types
  - auth: Admin key generation and validation
  - db: Schema creation and survey persistence
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
