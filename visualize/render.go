// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visualize

import (
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/poll-tracker/models"
)

// MaxStars is the default bar width
const MaxStars = 18

// Renderer turns polls and poll lists into text reports.
type Renderer struct {
	maxStars int
	styled   bool
}

type Option func(*Renderer)

// WithMaxStars sets the bar width. Values below 1 keep the default.
func WithMaxStars(n int) Option {
	return func(r *Renderer) {
		if n < 1 {
			slog.Warn("max stars must be at least 1, using default", "max_stars", n, "default", MaxStars)
			return
		}
		r.maxStars = n
	}
}

// WithStyle paints the bars of parties that have a color.
func WithStyle(enabled bool) Option {
	return func(r *Renderer) {
		r.styled = enabled
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{maxStars: MaxStars}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) MaxStars() int {
	return r.maxStars
}

// UnitsPerStar is the scale shared by every poll in list. Seats are divided
// evenly over the bar, rounding up; votes use a fixed percent per star.
func (r *Renderer) UnitsPerStar(list *models.PollList, metric Metric) float64 {
	if metric == ByVotes {
		return float64(100/r.maxStars + 1)
	}
	return math.Ceil(float64(list.Seats()) / float64(r.maxStars))
}

// PartyLine renders one party at the renderer's width. With styling enabled
// the bar is painted in the party's color, or a palette color picked from its
// name when it has none.
func (r *Renderer) PartyLine(p models.Party, metric Metric, unitsPerStar float64) (string, error) {
	bar, err := Bar(metricValue(p, metric), r.maxStars, unitsPerStar)
	if err != nil {
		return "", err
	}
	if r.styled {
		color := p.Color
		if color == "" {
			color = PaletteColor(p.Name)
		}
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
	}
	return bar + " " + p.String(), nil
}

// Poll renders the poll name followed by one line per party in insertion
// order. Parties whose bar cannot be rendered are left out.
func (r *Renderer) Poll(poll *models.Poll, metric Metric, unitsPerStar float64) string {
	var b strings.Builder
	b.WriteString(poll.Name())
	b.WriteString("\n")
	for _, p := range poll.Parties() {
		line, err := r.PartyLine(p, metric, unitsPerStar)
		if err != nil {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// PollList renders every poll in list with one shared scale, separating
// polls with a blank line.
func (r *Renderer) PollList(list *models.PollList, metric Metric) string {
	units := r.UnitsPerStar(list, metric)

	var b strings.Builder
	for _, poll := range list.Polls() {
		b.WriteString(r.Poll(poll, metric, units))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary is the seat total followed by the seat visualization of every poll.
func (r *Renderer) Summary(list *models.PollList) string {
	return "Number of seats: " + humanize.Comma(int64(list.Seats())) + "\n" + r.PollList(list, BySeats)
}
