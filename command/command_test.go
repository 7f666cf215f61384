// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"errors"
	"testing"

	"github.com/danielhkuo/live-survey/survey"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr error
	}{
		{"add", `ADD "Coffee"`, Add{Name: "Coffee"}, nil},
		{"add with spaces", `ADD "Iced Coffee"`, Add{Name: "Iced Coffee"}, nil},
		{"add with inner quotes", `ADD "say "hi""`, Add{Name: `say "hi"`}, nil},
		{"add empty name", `ADD ""`, Add{Name: ""}, nil},
		{"add unquoted", `ADD Coffee`, nil, ErrInvalidArgument},
		{"add missing closing quote", `ADD "Coffee`, nil, ErrInvalidArgument},
		{"add single quote char", `ADD "`, nil, ErrInvalidArgument},
		{"add empty argument", `ADD `, nil, ErrInvalidArgument},
		{"add name with newline", "ADD \"x\" 0 0\nREMOVE 0\nADD \"y\"", nil, survey.ErrNameLineBreak},
		{"add name with carriage return", "ADD \"x\rUP 0\"", nil, survey.ErrNameLineBreak},
		{"up", "UP 0", Up{Index: 0}, nil},
		{"up large", "UP 42", Up{Index: 42}, nil},
		{"up negative", "UP -1", Up{Index: -1}, nil},
		{"up not a number", "UP one", nil, ErrInvalidIndexFormat},
		{"up trailing space", "UP 1 ", nil, ErrInvalidIndexFormat},
		{"down", "DOWN 3", Down{Index: 3}, nil},
		{"down not a number", "DOWN 1.5", nil, ErrInvalidIndexFormat},
		{"no space", "ADD", nil, ErrMalformedCommand},
		{"empty line", "", nil, ErrMalformedCommand},
		{"lowercase keyword", `add "Coffee"`, Unknown{Keyword: "add"}, nil},
		{"remove is not a client command", "REMOVE 0", Unknown{Keyword: "REMOVE"}, nil},
		{"unknown", "VOTE 1", Unknown{Keyword: "VOTE"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FormatAdd("Coffee", 0, 0), `ADD "Coffee" 0 0`},
		{FormatAdd("Tea", 1, -3), `ADD "Tea" 1 -3`},
		{FormatUp(2), "UP 2"},
		{FormatDown(5), "DOWN 5"},
		{FormatRemove(1), "REMOVE 1"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestHelpBanner(t *testing.T) {
	if HelpBanner[0] != "HELP" {
		t.Errorf("first help line = %q", HelpBanner[0])
	}
	if HelpBanner[len(HelpBanner)-1] != "UNHELP" {
		t.Errorf("last help line = %q", HelpBanner[len(HelpBanner)-1])
	}
}
