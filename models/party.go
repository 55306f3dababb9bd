// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dustin/go-humanize"
)

var (
	ErrNegativeSeats  = errors.New("seat projection cannot be negative")
	ErrVoteShareRange = errors.New("vote share must be between 0.0 and 1.0")
)

// percentEpsilon absorbs float noise such as 0.29*100 = 28.999999999999996
const percentEpsilon = 1e-9

// Party is a single party's projection within a poll.
type Party struct {
	Name      string  `json:"name"`
	Seats     float64 `json:"seats"`
	VoteShare float64 `json:"vote_share"`
	Color     string  `json:"color,omitempty"`
}

func NewParty(name string) Party {
	return Party{Name: name}
}

// NewPartyWithProjection builds a party, applying the same validation as the setters.
// Invalid values are reported and left at zero.
func NewPartyWithProjection(name string, seats, voteShare float64) Party {
	p := Party{Name: name}
	_ = p.SetSeats(seats)
	_ = p.SetVoteShare(voteShare)
	return p
}

// SetSeats rejects negative projections and keeps the previous value.
func (p *Party) SetSeats(seats float64) error {
	if seats < 0 || math.IsNaN(seats) {
		slog.Warn("rejected seat projection", "party", p.Name, "seats", seats)
		return ErrNegativeSeats
	}
	p.Seats = seats
	return nil
}

// SetVoteShare clamps out of range input to 0.
func (p *Party) SetVoteShare(share float64) error {
	if share < 0 || share > 1 || math.IsNaN(share) {
		slog.Warn("vote share out of range, using 0", "party", p.Name, "vote_share", share)
		p.VoteShare = 0
		return ErrVoteShareRange
	}
	p.VoteShare = share
	return nil
}

// VotePercent returns the vote share as a whole percent, rounded down.
func (p Party) VotePercent() int {
	return int(math.Floor(p.VoteShare*100 + percentEpsilon))
}

// SeatShare returns the fraction of totalSeats this party is projected to win.
func (p Party) SeatShare(totalSeats int) float64 {
	if totalSeats <= 0 {
		slog.Warn("total seats must be at least 1", "total_seats", totalSeats)
		return 0
	}
	return p.Seats / float64(totalSeats)
}

func (p Party) String() string {
	seats := humanize.Ftoa(p.Seats)
	if p.Color != "" {
		return fmt.Sprintf("%s ([%s], %d%% of votes, %s seats)", p.Name, p.Color, p.VotePercent(), seats)
	}
	return fmt.Sprintf("%s (%d%% of votes, %s seats)", p.Name, p.VotePercent(), seats)
}
