// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/live-survey/survey"
)

var (
	ErrMalformedCommand   = errors.New("commands need at least 2 arguments")
	ErrInvalidArgument    = errors.New("argument does not begin or end with a quote")
	ErrInvalidIndexFormat = errors.New("index not valid")
)

// Keywords accepted from clients. REMOVE is not one of them.
const (
	KeywordAdd    = "ADD"
	KeywordUp     = "UP"
	KeywordDown   = "DOWN"
	KeywordRemove = "REMOVE"
)

// Command is one of Add, Up, Down, Remove or Unknown.
type Command interface {
	command()
}

type Add struct {
	Name string
}

type Up struct {
	Index int
}

type Down struct {
	Index int
}

// Remove is only built by the administrative path, never by Parse.
type Remove struct {
	Index int
}

// Unknown carries a keyword that is not part of the protocol.
type Unknown struct {
	Keyword string
}

func (Add) command()     {}
func (Up) command()      {}
func (Down) command()    {}
func (Remove) command()  {}
func (Unknown) command() {}

// Parse splits line on its first space into a keyword and an argument and
// decodes the argument for the keyword. Keywords are case-sensitive.
func Parse(line string) (Command, error) {
	keyword, arg, found := strings.Cut(line, " ")
	if !found {
		return nil, ErrMalformedCommand
	}

	switch keyword {
	case KeywordAdd:
		name, err := parseName(arg)
		if err != nil {
			return nil, err
		}
		return Add{Name: name}, nil
	case KeywordUp:
		index, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		return Up{Index: index}, nil
	case KeywordDown:
		index, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}
		return Down{Index: index}, nil
	default:
		return Unknown{Keyword: keyword}, nil
	}
}

// parseName takes everything between the first and last quote verbatim,
// so names may themselves contain quotes. Line breaks are refused here;
// a WebSocket frame can carry them but a line client would see them as
// separate commands.
func parseName(arg string) (string, error) {
	if len(arg) < 2 || !strings.HasPrefix(arg, `"`) || !strings.HasSuffix(arg, `"`) {
		return "", ErrInvalidArgument
	}
	name := arg[1 : len(arg)-1]
	if strings.ContainsAny(name, "\r\n") {
		return "", survey.ErrNameLineBreak
	}
	return name, nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndexFormat, arg)
	}
	return index, nil
}
