// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"log/slog"
	"sync"
)

// Channel is one client connection as seen by the hub.
// Send must not block; a failed Send marks the channel as dead.
type Channel interface {
	ID() string
	Send(msg string) error
	Close() error
}

// Hub tracks live channels and fans messages out to them.
type Hub struct {
	mu       sync.RWMutex
	channels map[Channel]struct{}
}

func New() *Hub {
	return &Hub{
		channels: make(map[Channel]struct{}),
	}
}

// Register adds ch to the live set.
func (h *Hub) Register(ch Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.channels[ch] = struct{}{}
	slog.Debug("channel registered", "conn_id", ch.ID(), "connections", len(h.channels))
}

// Unregister removes ch. No-op if ch is not registered.
func (h *Hub) Unregister(ch Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.channels[ch]; !ok {
		return
	}
	delete(h.channels, ch)
	slog.Debug("channel unregistered", "conn_id", ch.ID(), "connections", len(h.channels))
}

// Broadcast sends msg to every registered channel. A failing channel is
// logged, removed and closed; delivery to the others continues.
func (h *Hub) Broadcast(msg string) {
	var failed []Channel

	h.mu.RLock()
	for ch := range h.channels {
		if err := ch.Send(msg); err != nil {
			slog.Warn("broadcast send failed", "conn_id", ch.ID(), "error", err)
			failed = append(failed, ch)
		}
	}
	h.mu.RUnlock()

	for _, ch := range failed {
		h.drop(ch)
	}
}

// SendTo sends msg to ch only. A failed send drops ch, as in Broadcast.
func (h *Hub) SendTo(ch Channel, msg string) error {
	if err := ch.Send(msg); err != nil {
		h.drop(ch)
		return err
	}
	return nil
}

// Len returns the number of live channels.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels)
}

// CloseAll closes and forgets every channel. Used at shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	channels := make([]Channel, 0, len(h.channels))
	for ch := range h.channels {
		channels = append(channels, ch)
	}
	clear(h.channels)
	h.mu.Unlock()

	for _, ch := range channels {
		if err := ch.Close(); err != nil {
			slog.Warn("failed to close channel", "conn_id", ch.ID(), "error", err)
		}
	}
}

func (h *Hub) drop(ch Channel) {
	h.Unregister(ch)
	if err := ch.Close(); err != nil {
		slog.Debug("close after failed send", "conn_id", ch.ID(), "error", err)
	}
}
