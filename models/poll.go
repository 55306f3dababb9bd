// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"log/slog"
	"strings"
)

// Default sizes used when constructors receive invalid arguments
const (
	DefaultPollCapacity = 10
	DefaultNumPolls     = 5
	DefaultSeats        = 10
)

var (
	ErrPollFull     = errors.New("poll is full, cannot add another party")
	ErrPollListFull = errors.New("poll list is full, no further polls can be added")
	ErrNilPoll      = errors.New("poll is nil")
)

// Poll holds up to Capacity parties in insertion order. Names are matched
// case-insensitively; adding an existing name replaces that entry in place.
type Poll struct {
	name     string
	parties  []Party
	capacity int
}

func NewPoll(name string, capacity int) *Poll {
	if capacity < 1 {
		slog.Warn("poll capacity must be at least 1, using default",
			"poll", name, "capacity", capacity, "default", DefaultPollCapacity)
		capacity = DefaultPollCapacity
	}
	return &Poll{
		name:     name,
		parties:  make([]Party, 0, capacity),
		capacity: capacity,
	}
}

func (p *Poll) Name() string  { return p.name }
func (p *Poll) Len() int      { return len(p.parties) }
func (p *Poll) Capacity() int { return p.capacity }

// Parties returns a copy of the parties in insertion order.
func (p *Poll) Parties() []Party {
	out := make([]Party, len(p.parties))
	copy(out, p.parties)
	return out
}

// AddParty inserts party or replaces the party with the same name.
func (p *Poll) AddParty(party Party) error {
	if i := p.indexOf(party.Name); i >= 0 {
		p.parties[i] = party
		return nil
	}
	if len(p.parties) >= p.capacity {
		slog.Warn("poll is full", "poll", p.name, "party", party.Name, "capacity", p.capacity)
		return ErrPollFull
	}
	p.parties = append(p.parties, party)
	return nil
}

// Party looks up a party by name. A miss is reported and returns false.
func (p *Poll) Party(name string) (Party, bool) {
	if i := p.indexOf(name); i >= 0 {
		return p.parties[i], true
	}
	slog.Warn("party not in poll", "poll", p.name, "party", name)
	return Party{}, false
}

// Has reports whether a party is present without logging a miss.
func (p *Poll) Has(name string) bool {
	return p.indexOf(name) >= 0
}

func (p *Poll) indexOf(name string) int {
	for i := range p.parties {
		if strings.EqualFold(p.parties[i].Name, name) {
			return i
		}
	}
	return -1
}

func (p *Poll) String() string {
	var b strings.Builder
	b.WriteString(p.name)
	b.WriteString("\n")
	for _, party := range p.parties {
		b.WriteString(party.String())
		b.WriteString("\n")
	}
	return b.String()
}

// PollList is a fixed-capacity list of polls for one election.
type PollList struct {
	polls    []*Poll
	capacity int
	seats    int
}

func NewPollList(numPolls, seats int) *PollList {
	if numPolls < 1 {
		slog.Warn("number of polls should be at least 1, using default",
			"num_polls", numPolls, "default", DefaultNumPolls)
		numPolls = DefaultNumPolls
	}
	if seats < 1 {
		slog.Warn("number of seats should be at least 1, using default",
			"seats", seats, "default", DefaultSeats)
		seats = DefaultSeats
	}
	return &PollList{
		polls:    make([]*Poll, 0, numPolls),
		capacity: numPolls,
		seats:    seats,
	}
}

func (l *PollList) Seats() int    { return l.seats }
func (l *PollList) Len() int      { return len(l.polls) }
func (l *PollList) Capacity() int { return l.capacity }

// Polls returns the polls in the order they were added.
func (l *PollList) Polls() []*Poll {
	out := make([]*Poll, len(l.polls))
	copy(out, l.polls)
	return out
}

func (l *PollList) AddPoll(poll *Poll) error {
	if poll == nil {
		slog.Warn("cannot add nil poll")
		return ErrNilPoll
	}
	if len(l.polls) >= l.capacity {
		slog.Warn("poll list is full", "poll", poll.Name(), "capacity", l.capacity)
		return ErrPollListFull
	}
	l.polls = append(l.polls, poll)
	return nil
}
