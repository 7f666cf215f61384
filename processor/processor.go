// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package processor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/live-survey/command"
	"github.com/danielhkuo/live-survey/hub"
	"github.com/danielhkuo/live-survey/survey"
)

// Replies sent to the connection that issued a rejected command.
const (
	ReplyMalformed      = "Commands need at least 2 arguments."
	ReplyInvalidArg     = `Argument does not begin or end with ".`
	ReplyInvalidName    = "Entry name cannot be empty."
	ReplyNameLineBreak  = "Entry name cannot contain line breaks."
	ReplyInvalidIndex   = "Index not valid."
	ReplyIndexMissing   = "Index does not exist."
	ReplyAlreadyExists  = "Entry already exists."
	ReplyLimitExceeded  = "Entry limit exceeded."
	ReplyInvalidCommand = "Invalid command."
)

var ErrUnknownCommand = errors.New("invalid command")

// Processor applies commands to the shared survey and broadcasts the
// result. One mutex covers validation, mutation, the broadcast that
// follows it and the snapshot taken for new connections, so every client
// sees updates in the order they were applied.
type Processor struct {
	mu    sync.Mutex
	state *survey.State
	hub   *hub.Hub
}

func New(state *survey.State, h *hub.Hub) *Processor {
	return &Processor{state: state, hub: h}
}

// Join registers ch and sends it the current entries followed by the
// help banner. No broadcast can interleave with the snapshot. A channel
// that cannot take the snapshot is dropped by the hub.
func (p *Processor) Join(ch hub.Channel) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hub.Register(ch)
	for i, e := range p.state.Entries() {
		if err := p.hub.SendTo(ch, command.FormatAdd(e.Name, i, e.Votes)); err != nil {
			return fmt.Errorf("send snapshot: %w", err)
		}
	}
	for _, line := range command.HelpBanner {
		if err := p.hub.SendTo(ch, line); err != nil {
			return fmt.Errorf("send help: %w", err)
		}
	}
	return nil
}

// Leave unregisters ch.
func (p *Processor) Leave(ch hub.Channel) {
	p.hub.Unregister(ch)
}

// Handle parses one inbound line from ch and executes it. Rejections are
// answered on ch only and never close it.
func (p *Processor) Handle(ch hub.Channel, line string) {
	cmd, err := command.Parse(line)
	if err == nil {
		err = p.Execute(cmd)
	}
	if err == nil {
		return
	}

	slog.Debug("command rejected", "conn_id", ch.ID(), "line", line, "error", err)
	if sendErr := p.hub.SendTo(ch, Reply(err)); sendErr != nil {
		slog.Warn("failed to send reply, dropping channel", "conn_id", ch.ID(), "error", sendErr)
	}
}

// Execute applies cmd and broadcasts the resulting delta.
func (p *Processor) Execute(cmd command.Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apply(cmd)
}

// apply runs with p.mu held.
func (p *Processor) apply(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Add:
		// Capacity is reported ahead of name problems.
		if p.state.Full() {
			return survey.ErrCapacityExceeded
		}
		index, err := p.state.AddEntry(c.Name)
		if err != nil {
			return err
		}
		p.hub.Broadcast(command.FormatAdd(c.Name, index, 0))
	case command.Up:
		if err := p.state.UpVote(c.Index); err != nil {
			return err
		}
		p.hub.Broadcast(command.FormatUp(c.Index))
	case command.Down:
		if err := p.state.DownVote(c.Index); err != nil {
			return err
		}
		p.hub.Broadcast(command.FormatDown(c.Index))
	case command.Remove:
		if err := p.state.RemoveEntry(c.Index); err != nil {
			return err
		}
		p.hub.Broadcast(command.FormatRemove(c.Index))
	case command.Unknown:
		return ErrUnknownCommand
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	return nil
}

// Remove deletes the entry at index and returns it. It is the
// administrative path to REMOVE; no client keyword reaches it.
func (p *Processor) Remove(index int) (survey.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, err := p.state.Entry(index)
	if err != nil {
		return survey.Entry{}, err
	}
	if err := p.apply(command.Remove{Index: index}); err != nil {
		return survey.Entry{}, err
	}
	return e, nil
}

// Entries returns a consistent copy of the survey.
func (p *Processor) Entries() []survey.Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Entries()
}

// Capacity is the survey's maximum number of entries.
func (p *Processor) Capacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.MaxEntries()
}

// Connections is the number of channels currently registered.
func (p *Processor) Connections() int {
	return p.hub.Len()
}

// Reply maps a command error to the line sent back to its issuer.
func Reply(err error) string {
	switch {
	case errors.Is(err, command.ErrMalformedCommand):
		return ReplyMalformed
	case errors.Is(err, command.ErrInvalidArgument):
		return ReplyInvalidArg
	case errors.Is(err, command.ErrInvalidIndexFormat):
		return ReplyInvalidIndex
	case errors.Is(err, survey.ErrInvalidName):
		return ReplyInvalidName
	case errors.Is(err, survey.ErrNameLineBreak):
		return ReplyNameLineBreak
	case errors.Is(err, survey.ErrIndexOutOfRange):
		return ReplyIndexMissing
	case errors.Is(err, survey.ErrEntryAlreadyExists):
		return ReplyAlreadyExists
	case errors.Is(err, survey.ErrCapacityExceeded):
		return ReplyLimitExceeded
	default:
		return ReplyInvalidCommand
	}
}
