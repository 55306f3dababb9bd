// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/danielhkuo/poll-tracker/models"
)

// voteBand is how far (in percent) a party's vote share may stray from its seat share
const voteBand = 5

// Generator creates random but internally consistent polls for one election.
// It is not safe for concurrent use; the underlying *rand.Rand is not.
type Generator struct {
	totalSeats int
	rng        *rand.Rand
}

// New creates a generator for an election with totalSeats seats. A nil rng
// is replaced by a time-seeded source. Seat totals above models.MaxSeats are
// capped there.
func New(totalSeats int, rng *rand.Rand) *Generator {
	if totalSeats < 1 {
		slog.Warn("number of seats should be at least 1, using default",
			"seats", totalSeats, "default", models.DefaultSeats)
		totalSeats = models.DefaultSeats
	}
	if totalSeats > models.MaxSeats {
		slog.Warn("number of seats too large, capping",
			"seats", totalSeats, "max", models.MaxSeats)
		totalSeats = models.MaxSeats
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Generator{totalSeats: totalSeats, rng: rng}
}

// NewSeeded creates a generator whose output is fully determined by seed.
func NewSeeded(totalSeats int, seed uint64) *Generator {
	return New(totalSeats, rand.New(rand.NewPCG(seed, seed)))
}

func (g *Generator) TotalSeats() int {
	return g.totalSeats
}

// GenerateParty projects a random number of seats in [0, maxSeats] and a vote
// percentage within voteBand points of the resulting seat share, capped at maxPercent.
func (g *Generator) GenerateParty(name string, maxSeats, maxPercent int) models.Party {
	seats, percent := g.drawParty(maxSeats, maxPercent)
	return models.NewPartyWithProjection(name, float64(seats), float64(percent)/100)
}

func (g *Generator) drawParty(maxSeats, maxPercent int) (seats, percent int) {
	maxSeats = min(max(maxSeats, 0), g.totalSeats)
	maxPercent = min(max(maxPercent, 0), 100)

	seats = g.rng.IntN(maxSeats + 1)

	seatPercent := seats * 100 / g.totalSeats
	low := max(0, seatPercent-voteBand)
	high := max(0, seatPercent+voteBand)

	// A collapsed band would make the draw undefined, keep at least one value
	span := max(high-low, 1)

	percent = min(low+g.rng.IntN(span), maxPercent)
	return seats, percent
}

// GeneratePoll divides all seats and 100% of the vote among partyNames.
// Parties are drawn in random order against the remaining budget; the last
// one receives whatever is left so the totals always add up.
func (g *Generator) GeneratePoll(name string, partyNames []string) *models.Poll {
	names := models.UniqueNames(partyNames)
	poll := models.NewPoll(name, max(len(names), 1))
	if len(names) == 0 {
		slog.Warn("no party names given, poll is empty", "poll", name)
		return poll
	}

	remaining := make([]int, len(names))
	for i := range remaining {
		remaining[i] = i
	}

	seatsLeft := g.totalSeats
	percentLeft := 100
	for len(remaining) > 1 {
		pick := g.rng.IntN(len(remaining))
		idx := remaining[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)

		seats, percent := g.drawParty(seatsLeft, percentLeft)
		poll.AddParty(models.NewPartyWithProjection(names[idx], float64(seats), float64(percent)/100))

		seatsLeft -= seats
		percentLeft -= percent
	}

	last := models.NewPartyWithProjection(names[remaining[0]], float64(seatsLeft), float64(percentLeft)/100)
	poll.AddParty(last)

	slog.Debug("generated poll", "poll", name, "parties", poll.Len())
	return poll
}

// GeneratePollList generates numPolls polls named Poll0, Poll1, ...
func (g *Generator) GeneratePollList(numPolls int, partyNames []string) *models.PollList {
	list := models.NewPollList(numPolls, g.totalSeats)
	for i := 0; i < list.Capacity(); i++ {
		list.AddPoll(g.GeneratePoll("Poll"+strconv.Itoa(i), partyNames))
	}
	return list
}
