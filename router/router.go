// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/live-survey/cliparse"
	"github.com/danielhkuo/live-survey/handlers"
	"github.com/danielhkuo/live-survey/middleware"
	"github.com/danielhkuo/live-survey/processor"
	"github.com/danielhkuo/live-survey/server"
)

func NewRouter(proc *processor.Processor, srv *server.Server, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	socketHandler := handlers.NewSocketHandler(srv)
	surveyHandler := handlers.NewSurveyHandler(proc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Live protocol
	mux.HandleFunc("GET /ws", middleware.WithLogging(socketHandler.Connect))

	// Read-only snapshot (public)
	mux.HandleFunc("GET /survey", middleware.WithLogging(surveyHandler.GetSurvey))

	// Administrative REMOVE (X-Admin-Key)
	mux.HandleFunc("DELETE /entries/{index}", middleware.WithLogging(surveyHandler.RemoveEntry))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-survey API v1"))
	})

	return mux
}
