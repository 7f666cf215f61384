// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes.

# Routes

	GET    /health           → "OK"
	GET    /                 → "live-survey API v1"
	GET    /ws               → WebSocket, survey line protocol
	GET    /survey           → JSON snapshot
	DELETE /entries/{index}  → remove an entry (X-Admin-Key)

Uses Go 1.22+ method and wildcard patterns. Everything except /health and
/ is wrapped with middleware.WithLogging; main wraps the whole mux in
middleware.CORS.
*/
package router
