// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conn

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClosed         = errors.New("connection closed")
	ErrSendBufferFull = errors.New("send buffer full")
)

// WriteWait bounds a single outbound write.
const WriteWait = 10 * time.Second

// Transport moves text messages over one client connection.
type Transport interface {
	ReadMessage() (string, error)
	WriteMessage(msg string, deadline time.Time) error
	Close() error
	RemoteAddr() string
}

// Conn is a client channel with a buffered outbound queue drained by its
// own writer goroutine. It satisfies hub.Channel.
type Conn struct {
	id        string
	transport Transport
	send      chan string
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	started   time.Time
}

// New wraps transport. queueSize is the number of messages Send can buffer
// before reporting ErrSendBufferFull.
func New(transport Transport, queueSize int) *Conn {
	if queueSize < 1 {
		queueSize = 1
	}
	c := &Conn{
		id:        uuid.NewString(),
		transport: transport,
		send:      make(chan string, queueSize),
		done:      make(chan struct{}),
		started:   time.Now(),
	}
	c.wg.Add(1)
	go c.writer()
	return c
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) RemoteAddr() string { return c.transport.RemoteAddr() }

// Started is when the connection was accepted.
func (c *Conn) Started() time.Time { return c.started }

// Send queues msg without blocking.
func (c *Conn) Send(msg string) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return ErrClosed
	default:
		return ErrSendBufferFull
	}
}

// ReadLoop calls handle for each inbound message until the peer goes away
// or the connection is closed. A clean disconnect returns nil.
func (c *Conn) ReadLoop(handle func(msg string)) error {
	for {
		msg, err := c.transport.ReadMessage()
		if err != nil {
			if c.isClosed() || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		handle(msg)
	}
}

// Close stops the writer and closes the transport. Safe to call more
// than once; queued messages not yet written are dropped.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.transport.Close()
	})
	return err
}

// Wait blocks until the writer goroutine has exited.
func (c *Conn) Wait() {
	c.wg.Wait()
}

func (c *Conn) writer() {
	defer c.wg.Done()
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.transport.WriteMessage(msg, time.Now().Add(WriteWait)); err != nil {
				if !c.isClosed() {
					slog.Warn("write failed", "conn_id", c.id, "error", err)
				}
				c.Close()
				return
			}
		}
	}
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
