// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visualize

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/danielhkuo/poll-tracker/models"
)

// Bar characters
const (
	star    = "*"
	divider = "|"
	blank   = " "
)

var (
	ErrNegativeScale = errors.New("max stars and units per star cannot be negative")
	ErrZeroScale     = errors.New("units per star must be greater than zero")
	ErrUnknownMetric = errors.New("unknown metric, use seats or votes")
)

// Metric selects which projection a bar represents.
type Metric int

const (
	BySeats Metric = iota
	ByVotes
)

func (m Metric) String() string {
	switch m {
	case BySeats:
		return models.MetricSeats
	case ByVotes:
		return models.MetricVotes
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric accepts "seats" or "votes", ignoring case and surrounding space.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.MetricSeats:
		return BySeats, nil
	case models.MetricVotes:
		return ByVotes, nil
	}
	return BySeats, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Bar renders value as a row of stars, one per unitsPerStar, with a divider
// marking the majority point of a maxStars wide bar. Bars for values up to
// maxStars*unitsPerStar are exactly maxStars+1 characters; larger values
// overflow past the end instead of being truncated, by at most maxStars
// extra stars.
func Bar(value float64, maxStars int, unitsPerStar float64) (string, error) {
	if maxStars < 0 || unitsPerStar < 0 {
		slog.Warn("cannot render bar with negative scale", "max_stars", maxStars, "units_per_star", unitsPerStar)
		return "", ErrNegativeScale
	}
	if unitsPerStar == 0 {
		slog.Warn("cannot render bar with zero units per star", "max_stars", maxStars)
		return "", ErrZeroScale
	}

	printed := 0
	switch q := math.Floor(value / unitsPerStar); {
	case q > float64(2*maxStars):
		printed = 2 * maxStars
	case q > 0:
		printed = int(q)
	}
	majority := (maxStars + 1) / 2
	blanks := maxStars - printed

	var b strings.Builder
	switch {
	case printed > majority:
		b.WriteString(repeat(star, majority))
		b.WriteString(divider)
		b.WriteString(repeat(star, printed-majority))
		b.WriteString(repeat(blank, blanks))
	case printed == majority:
		b.WriteString(repeat(star, majority))
		b.WriteString(divider)
		b.WriteString(repeat(blank, blanks))
	default:
		b.WriteString(repeat(star, printed))
		b.WriteString(repeat(blank, blanks-majority))
		b.WriteString(divider)
		b.WriteString(repeat(blank, majority))
	}
	return b.String(), nil
}

// PartyLine renders the party's bar for metric followed by its description.
func PartyLine(p models.Party, metric Metric, maxStars int, unitsPerStar float64) (string, error) {
	bar, err := Bar(metricValue(p, metric), maxStars, unitsPerStar)
	if err != nil {
		return "", err
	}
	return bar + " " + p.String(), nil
}

func metricValue(p models.Party, metric Metric) float64 {
	if metric == ByVotes {
		return float64(p.VotePercent())
	}
	return p.Seats
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
