// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tally combines the polls of a list into averaged projections.
package tally

import (
	"log/slog"

	"github.com/danielhkuo/poll-tracker/models"
)

// AggregateName is the name of the poll returned by Aggregate
const AggregateName = "Aggregate"

// AveragePartyData averages the party's seats and vote share over the polls
// that include it. A party missing from every poll averages to zero. The
// color of the first poll that sets one is kept.
func AveragePartyData(list *models.PollList, name string) models.Party {
	var seats, shares []float64
	var color string
	for _, poll := range list.Polls() {
		if !poll.Has(name) {
			continue
		}
		p, _ := poll.Party(name)
		seats = append(seats, p.Seats)
		shares = append(shares, p.VoteShare)
		if color == "" {
			color = p.Color
		}
	}

	if len(seats) == 0 {
		slog.Warn("party not found in any poll", "party", name)
	}
	avg := models.NewPartyWithProjection(name, mean(seats), clampShare(mean(shares)))
	avg.Color = color
	return avg
}

// Aggregate builds a poll with one averaged party per name, in the order given.
func Aggregate(list *models.PollList, partyNames []string) *models.Poll {
	poll := models.NewPoll(AggregateName, max(len(partyNames), 1))
	for _, name := range partyNames {
		poll.AddParty(AveragePartyData(list, name))
	}
	return poll
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// clampShare keeps float rounding in the mean from pushing a share past 1
func clampShare(share float64) float64 {
	return min(max(share, 0), 1)
}
