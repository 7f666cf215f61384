// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/live-survey/conn"
	"github.com/danielhkuo/live-survey/middleware"
	"github.com/danielhkuo/live-survey/server"
)

type SocketHandler struct {
	srv      *server.Server
	upgrader websocket.Upgrader
}

func NewSocketHandler(srv *server.Server) *SocketHandler {
	return &SocketHandler{
		srv: srv,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Survey clients are unauthenticated; any page may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect handles GET /ws
// Upgrades to a WebSocket and serves the survey protocol until the
// client goes away
func (h *SocketHandler) Connect(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := h.srv.Open(conn.NewWebSocket(ws))
	h.srv.Serve(c, middleware.GetClientIP(r))
}
