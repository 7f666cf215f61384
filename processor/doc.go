// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package processor is the survey state machine.

Each inbound line goes through Handle:

	line → command.Parse → Execute (under lock) → hub.Broadcast

Execute validates the command against the survey, mutates it and
broadcasts the delta before releasing the lock. Join takes the same lock
to register a new channel and send it the snapshot and help banner, so a
client never sees a broadcast in the middle of its snapshot.

# Replies

Rejected commands are answered on the issuing channel only:

	MalformedCommand    Commands need at least 2 arguments.
	InvalidArgument     Argument does not begin or end with ".
	InvalidIndexFormat  Index not valid.
	IndexOutOfRange     Index does not exist.
	EntryAlreadyExists  Entry already exists.
	CapacityExceeded    Entry limit exceeded.
	unknown keyword     Invalid command.

Hub sends are non-blocking, so holding the lock across a broadcast costs
one queue push per connection.
*/
package processor
