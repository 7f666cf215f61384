// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package conn adapts client connections to hub.Channel.

A Conn owns a bounded outbound queue and a writer goroutine. Send never
blocks: it fails with ErrSendBufferFull when the queue is full, and the
hub then drops the connection. Each write has a WriteWait deadline; a
failed write closes the connection, which ends its ReadLoop.

Two transports are provided:

  - WebSocket: one text frame per line (gorilla/websocket)
  - Line: '\n'-terminated lines over a net.Conn, trailing '\r' stripped
*/
package conn
