// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/live-survey/auth"
	"github.com/danielhkuo/live-survey/cliparse"
	"github.com/danielhkuo/live-survey/middleware"
	"github.com/danielhkuo/live-survey/models"
	"github.com/danielhkuo/live-survey/processor"
	"github.com/danielhkuo/live-survey/survey"
)

type SurveyHandler struct {
	proc *processor.Processor
	cfg  cliparse.Config
}

func NewSurveyHandler(proc *processor.Processor, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{proc: proc, cfg: cfg}
}

// GetSurvey handles GET /survey
// Returns a consistent snapshot of all entries
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	entries := h.proc.Entries()

	resp := models.SurveyResponse{
		Entries:     make([]models.EntryResponse, 0, len(entries)),
		MaxEntries:  h.proc.Capacity(),
		Connections: h.proc.Connections(),
	}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, models.EntryResponse{
			Index: i,
			Name:  e.Name,
			Votes: e.Votes,
		})
		resp.TotalVotes += e.Votes
	}
	resp.TotalVotesText = humanize.Comma(resp.TotalVotes)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// RemoveEntry handles DELETE /entries/{index}
// Requires X-Admin-Key; broadcasts REMOVE <index> to every client
func (h *SurveyHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	err := auth.ValidateAdminKey(auth.AdminScope, r.Header.Get("X-Admin-Key"), h.cfg.AdminKeySalt)
	if errors.Is(err, auth.ErrAdminDisabled) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Admin operations are disabled")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, processor.ReplyInvalidIndex)
		return
	}

	removed, err := h.proc.Remove(index)
	if err != nil {
		if errors.Is(err, survey.ErrIndexOutOfRange) {
			middleware.ErrorResponse(w, http.StatusNotFound, processor.ReplyIndexMissing)
			return
		}
		slog.Error("failed to remove entry", "index", index, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove entry")
		return
	}

	slog.Info("entry removed", "index", index, "name", removed.Name, "votes", removed.Votes)

	middleware.JSONResponse(w, http.StatusOK, models.RemoveEntryResponse{
		Removed: removed.Name,
		Index:   index,
	})
}
