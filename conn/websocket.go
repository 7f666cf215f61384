// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conn

import (
	"errors"
	"io"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocket carries one protocol line per frame.
type WebSocket struct {
	ws *websocket.Conn
}

func NewWebSocket(ws *websocket.Conn) *WebSocket {
	return &WebSocket{ws: ws}
}

func (t *WebSocket) ReadMessage() (string, error) {
	_, data, err := t.ws.ReadMessage()
	if err != nil {
		// Any close frame from the peer ends the session cleanly.
		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) {
			return "", io.EOF
		}
		return "", err
	}
	return string(data), nil
}

func (t *WebSocket) WriteMessage(msg string, deadline time.Time) error {
	if err := t.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return t.ws.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (t *WebSocket) Close() error {
	return t.ws.Close()
}

func (t *WebSocket) RemoteAddr() string {
	return t.ws.RemoteAddr().String()
}
