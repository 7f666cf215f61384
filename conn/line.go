// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conn

import (
	"bufio"
	"io"
	"net"
	"strings"
	"time"
)

// Line carries newline-terminated protocol lines over a stream.
type Line struct {
	nc      net.Conn
	scanner *bufio.Scanner
}

func NewLine(nc net.Conn) *Line {
	return &Line{nc: nc, scanner: bufio.NewScanner(nc)}
}

func (t *Line) ReadMessage() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(t.scanner.Text(), "\r"), nil
}

func (t *Line) WriteMessage(msg string, deadline time.Time) error {
	if err := t.nc.SetWriteDeadline(deadline); err != nil {
		return err
	}
	_, err := io.WriteString(t.nc, msg+"\n")
	return err
}

func (t *Line) Close() error {
	return t.nc.Close()
}

func (t *Line) RemoteAddr() string {
	return t.nc.RemoteAddr().String()
}
