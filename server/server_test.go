// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package server

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/live-survey/command"
	"github.com/danielhkuo/live-survey/hub"
	"github.com/danielhkuo/live-survey/processor"
	"github.com/danielhkuo/live-survey/survey"
	"github.com/danielhkuo/live-survey/testutil"
)

type lineClient struct {
	t  *testing.T
	nc net.Conn
	r  *bufio.Reader
}

func dial(t *testing.T, addr string) *lineClient {
	t.Helper()
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { nc.Close() })
	return &lineClient{t: t, nc: nc, r: bufio.NewReader(nc)}
}

func (c *lineClient) send(line string) {
	c.t.Helper()
	if _, err := c.nc.Write([]byte(line + "\n")); err != nil {
		c.t.Fatalf("write: %v", err)
	}
}

func (c *lineClient) expect(want ...string) {
	c.t.Helper()
	c.nc.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, w := range want {
		line, err := c.r.ReadString('\n')
		if err != nil {
			c.t.Fatalf("read (waiting for %q): %v", w, err)
		}
		if got := strings.TrimSuffix(line, "\n"); got != w {
			c.t.Fatalf("got %q, want %q", got, w)
		}
	}
}

func startTCP(t *testing.T, max int) (*Server, *processor.Processor, string) {
	t.Helper()
	state, err := survey.New(max, nil)
	if err != nil {
		t.Fatal(err)
	}
	proc := processor.New(state, hub.New())
	srv := New(proc, 16, "salt")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.ServeTCP(ln) }()
	t.Cleanup(func() {
		ln.Close()
		if err := <-done; err != nil {
			t.Errorf("ServeTCP() error = %v", err)
		}
	})
	return srv, proc, ln.Addr().String()
}

func TestServeTCP_Session(t *testing.T) {
	_, proc, addr := startTCP(t, 2)

	a := dial(t, addr)
	a.expect(command.HelpBanner...)

	a.send(`ADD "Coffee"`)
	a.expect(`ADD "Coffee" 0 0`)

	b := dial(t, addr)
	b.expect(append([]string{`ADD "Coffee" 0 0`}, command.HelpBanner...)...)

	a.send("UP 0")
	a.expect("UP 0")
	b.expect("UP 0")

	b.send(`ADD "Coffee"`)
	b.expect("Entry already exists.")

	a.send("ADD")
	a.expect("Commands need at least 2 arguments.")

	// Connection survives rejections
	a.send(`ADD "Tea"`)
	a.expect(`ADD "Tea" 1 0`)
	b.expect(`ADD "Tea" 1 0`)

	if e := proc.Entries()[0]; e.Votes != 1 {
		t.Errorf("votes = %d, want 1", e.Votes)
	}
}

func TestServeTCP_DisconnectUnregisters(t *testing.T) {
	_, proc, addr := startTCP(t, 2)

	a := dial(t, addr)
	a.expect(command.HelpBanner...)
	testutil.WaitFor(t, 2*time.Second, func() bool { return proc.Connections() == 1 })

	a.nc.Close()

	testutil.WaitFor(t, 2*time.Second, func() bool { return proc.Connections() == 0 })
}

func TestQueueSize_FitsSnapshot(t *testing.T) {
	srv, _, _ := startTCP(t, 40)

	want := 40 + len(command.HelpBanner) + 16
	if srv.QueueSize() != want {
		t.Errorf("QueueSize() = %d, want %d", srv.QueueSize(), want)
	}
}

// A name carrying line breaks would reach line clients as several
// commands. It is refused and nothing is broadcast.
func TestLineBreakInNameNotBroadcast(t *testing.T) {
	_, proc, addr := startTCP(t, 2)

	line := dial(t, addr)
	line.expect(command.HelpBanner...)
	testutil.WaitFor(t, 2*time.Second, func() bool { return proc.Connections() == 1 })

	// A WebSocket frame is handed to the processor verbatim.
	ws := testutil.NewChannel("ws")
	if err := proc.Join(ws); err != nil {
		t.Fatal(err)
	}
	ws.Reset()

	proc.Handle(ws, "ADD \"x\" 0 0\nREMOVE 0\nHELP\nADD \"y\"")

	if got := ws.Messages(); len(got) != 1 || got[0] != processor.ReplyNameLineBreak {
		t.Errorf("sender got %q, want %q", got, processor.ReplyNameLineBreak)
	}
	if n := len(proc.Entries()); n != 0 {
		t.Errorf("len(entries) = %d, want 0", n)
	}

	// The next line the TCP client reads is the next real broadcast.
	proc.Handle(ws, `ADD "z"`)
	line.expect(`ADD "z" 0 0`)
}
