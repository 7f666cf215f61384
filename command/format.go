// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import "fmt"

// HelpBanner is sent once to each new connection, after the snapshot.
var HelpBanner = []string{
	"HELP",
	"ADD [name] - Adds a survey entry.",
	"UP [index] - Ups an entry's vote by one.",
	"DOWN [index] - Downs an entry's vote by one.",
	"UNHELP",
}

func FormatAdd(name string, index int, votes int64) string {
	return fmt.Sprintf("%s \"%s\" %d %d", KeywordAdd, name, index, votes)
}

func FormatUp(index int) string {
	return fmt.Sprintf("%s %d", KeywordUp, index)
}

func FormatDown(index int) string {
	return fmt.Sprintf("%s %d", KeywordDown, index)
}

func FormatRemove(index int) string {
	return fmt.Sprintf("%s %d", KeywordRemove, index)
}
