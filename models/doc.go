// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types of the HTTP API.

# Response Types

  - SurveyResponse: entries, max_entries, connections, total_votes
  - EntryResponse: index, name, votes
  - RemoveEntryResponse: removed, index
  - ErrorResponse: error, message

The live protocol itself is plain text; see package command.
*/
package models
