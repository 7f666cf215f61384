// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package server ties a client connection to the survey processor.

For every connection, whether it arrived over WebSocket or TCP:

 1. Join: register with the hub, receive the snapshot and help banner
 2. ReadLoop: each line goes to processor.Handle
 3. Leave: unregister, close

ServeTCP runs the newline-delimited listener:

	ln, _ := net.Listen("tcp", ":3319")
	go srv.ServeTCP(ln)

The WebSocket endpoint lives in the handlers package and calls Serve.
*/
package server
