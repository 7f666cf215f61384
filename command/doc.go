// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package command implements the line protocol.

# Inbound

A line is split once, on its first space, into a keyword and an argument:

	ADD "<name>"
	UP <index>
	DOWN <index>

Parse returns one of Add, Up, Down or Unknown. A line without a space is
ErrMalformedCommand. An ADD argument must start and end with a quote
(ErrInvalidArgument); UP and DOWN take a base-10 integer
(ErrInvalidIndexFormat). Range checks happen later, against the survey.

# Outbound

	ADD "<name>" <index> <votes>
	UP <index>
	DOWN <index>
	REMOVE <index>

followed on connect by HelpBanner.
*/
package command
