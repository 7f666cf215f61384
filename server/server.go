// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package server

import (
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/live-survey/auth"
	"github.com/danielhkuo/live-survey/command"
	"github.com/danielhkuo/live-survey/conn"
	"github.com/danielhkuo/live-survey/processor"
)

// Server drives the lifecycle of every client connection, whatever its
// transport.
type Server struct {
	proc    *processor.Processor
	backlog int
	ipSalt  string
}

func New(proc *processor.Processor, backlog int, ipSalt string) *Server {
	return &Server{proc: proc, backlog: backlog, ipSalt: ipSalt}
}

// QueueSize is the outbound queue length for a new connection: room for a
// full snapshot and the help banner plus backlog live updates.
func (s *Server) QueueSize() int {
	return s.proc.Capacity() + len(command.HelpBanner) + s.backlog
}

// Open wraps transport in a Conn sized for this server.
func (s *Server) Open(transport conn.Transport) *conn.Conn {
	return conn.New(transport, s.QueueSize())
}

// Serve joins c to the survey, processes its lines until it disconnects,
// then removes it. Serve closes c before returning.
func (s *Server) Serve(c *conn.Conn, remoteIP string) {
	defer c.Wait()
	defer c.Close()

	client := auth.HashIP(remoteIP, s.ipSalt)
	if err := s.proc.Join(c); err != nil {
		slog.Warn("failed to join client", "conn_id", c.ID(), "client", client, "error", err)
		return
	}
	defer s.proc.Leave(c)

	slog.Info("client connected", "conn_id", c.ID(), "client", client, "connections", s.proc.Connections())

	err := c.ReadLoop(func(line string) {
		s.proc.Handle(c, line)
	})
	if err != nil {
		slog.Error("connection error", "conn_id", c.ID(), "error", err)
	}

	slog.Info("client disconnected",
		"conn_id", c.ID(),
		"client", client,
		"connected", humanize.Time(c.Started()),
	)
}

// ServeTCP accepts newline-delimited clients on ln until ln is closed.
// Accept errors are logged and do not stop the loop.
func (s *Server) ServeTCP(ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("accept failed", "error", err)
			time.Sleep(50 * time.Millisecond)
			continue
		}

		host, _, splitErr := net.SplitHostPort(nc.RemoteAddr().String())
		if splitErr != nil {
			host = nc.RemoteAddr().String()
		}
		go s.Serve(s.Open(conn.NewLine(nc)), host)
	}
}
