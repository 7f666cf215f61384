// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the live survey.

# Handler Types

  - SocketHandler: Upgrades GET /ws to a WebSocket and serves the line protocol
  - SurveyHandler: JSON snapshot and the administrative REMOVE

Handlers are created via constructor functions:

	socketHandler := handlers.NewSocketHandler(srv)
	surveyHandler := handlers.NewSurveyHandler(proc, cfg)

# WebSocket Protocol

Each text frame is one command line. A new client first receives one
ADD line per existing entry, then the help banner:

	ADD "Coffee" 0 3
	HELP
	ADD [name] - Adds a survey entry.
	UP [index] - Ups an entry's vote by one.
	DOWN [index] - Downs an entry's vote by one.
	UNHELP

Accepted commands are broadcast to every client, including the sender.
Rejected commands are answered on the sender's socket only.

# Administration

	DELETE /entries/{index} → RemoveEntry (broadcasts REMOVE <index>)

Admin operations require the X-Admin-Key header. They are disabled
entirely when no ADMIN_KEY_SALT is configured.
*/
package handlers
