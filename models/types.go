// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Response types

type EntryResponse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Votes int64  `json:"votes"`
}

type SurveyResponse struct {
	Entries        []EntryResponse `json:"entries"`
	MaxEntries     int             `json:"max_entries"`
	Connections    int             `json:"connections"`
	TotalVotes     int64           `json:"total_votes"`
	TotalVotesText string          `json:"total_votes_text"` // e.g. "1,204"
}

type RemoveEntryResponse struct {
	Removed string `json:"removed"`
	Index   int    `json:"index"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
