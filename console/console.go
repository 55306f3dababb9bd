// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/poll-tracker/generator"
	"github.com/danielhkuo/poll-tracker/models"
	"github.com/danielhkuo/poll-tracker/tally"
	"github.com/danielhkuo/poll-tracker/visualize"
)

// Menu options
const (
	optionAll       = "all"
	optionAggregate = "aggregate"
	optionQuit      = "quit"
)

type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *visualize.Renderer
	seed     *uint64

	names []string
	list  *models.PollList
}

type Option func(*Session)

// WithRenderer replaces the default renderer.
func WithRenderer(r *visualize.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithSeed makes random polls reproducible. Without it they are seeded from
// the clock.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seed = &seed
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: visualize.NewRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sets up the tracker and serves the visualization menu until the user
// quits or the input ends.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		slog.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) run() error {
	fmt.Fprintln(s.out, "Welcome to the poll tracker")
	if err := s.setup(); err != nil {
		return err
	}

	for {
		metric, err := s.readMetric()
		if err != nil {
			return err
		}
		option, err := s.readChoice(
			"What would you like to do next? all (results of all polls), aggregate (aggregate result), quit (end the session)",
			optionAll, optionAggregate, optionQuit,
		)
		if err != nil {
			return err
		}

		switch option {
		case optionAll:
			fmt.Fprint(s.out, "\n"+s.renderer.PollList(s.list, metric))
		case optionAggregate:
			fmt.Fprint(s.out, "\n"+aggregateReport(s.renderer, s.list, s.names, metric)+"\n")
		case optionQuit:
			return nil
		}
	}
}

func (s *Session) setup() error {
	seats, err := s.readInt("How many seats are available in this election?", 1, models.MaxSeats)
	if err != nil {
		return err
	}

	for len(s.names) == 0 {
		line, err := s.readLine("What are the parties participating in this election? (names separated by commas)")
		if err != nil {
			return err
		}
		s.names = models.SplitNames(line)
		if len(s.names) == 0 {
			fmt.Fprintln(s.out, "Please enter at least one party name.")
		}
	}

	numPolls, err := s.readInt("How many polls would you like to track?", 1, models.MaxPolls)
	if err != nil {
		return err
	}

	random, err := s.readChoice("Would you like me to generate a set of random polls? (yes/no)", "yes", "no")
	if err != nil {
		return err
	}

	if random == "yes" {
		s.list = s.generator(seats).GeneratePollList(numPolls, s.names)
		slog.Debug("generated random polls", "polls", numPolls, "seats", seats, "seeded", s.seed != nil)
		return nil
	}

	s.list = models.NewPollList(numPolls, seats)
	for i := range numPolls {
		poll, err := s.readPoll(i, seats)
		if err != nil {
			return err
		}
		s.list.AddPoll(poll)
	}
	return nil
}

func (s *Session) generator(seats int) *generator.Generator {
	if s.seed != nil {
		return generator.NewSeeded(seats, *s.seed)
	}
	return generator.New(seats, nil)
}

// readPoll asks for one poll. A blank name falls back to Poll<i>. No party may
// be projected more than the election's seats.
func (s *Session) readPoll(i, seats int) (*models.Poll, error) {
	name, err := s.readLine("Name of poll:")
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "Poll" + strconv.Itoa(i)
	}

	poll := models.NewPoll(name, len(s.names))
	for _, partyName := range s.names {
		party := models.NewParty(partyName)
		setSeats := func(v float64) error {
			if v > float64(seats) {
				return fmt.Errorf("seat projection cannot exceed the %d seats available", seats)
			}
			return party.SetSeats(v)
		}
		if err := s.readFloat("Expected number of seats for "+partyName+":", setSeats); err != nil {
			return nil, err
		}
		share := "Expected share of the vote for " + partyName + ": (enter as a decimal)"
		if err := s.readFloat(share, party.SetVoteShare); err != nil {
			return nil, err
		}
		poll.AddParty(party)
	}
	return poll, nil
}

func (s *Session) readMetric() (visualize.Metric, error) {
	choice, err := s.readChoice(
		"Choose visualization type: seats (visualization by seats), votes (visualization by vote percentage)",
		models.MetricSeats, models.MetricVotes,
	)
	if err != nil {
		return visualize.BySeats, err
	}
	return visualize.ParseMetric(choice)
}

// readLine prints prompt and returns the next trimmed line
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) readInt(prompt string, minValue, maxValue int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= minValue && n <= maxValue {
			return n, nil
		}
		fmt.Fprintf(s.out, "Please enter a whole number between %d and %d.\n", minValue, maxValue)
	}
}

// readFloat asks until set accepts the value
func (s *Session) readFloat(prompt string, set func(float64) error) error {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(s.out, "Please enter a number.")
			continue
		}
		if err := set(v); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		return nil
	}
}

// readChoice asks until the answer is one of choices, ignoring case
func (s *Session) readChoice(prompt string, choices ...string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(line)
		for _, c := range choices {
			if answer == c {
				return c, nil
			}
		}
		fmt.Fprintf(s.out, "Please answer %s.\n", strings.Join(choices, ", "))
	}
}

// WriteReport writes every poll of list followed by the aggregate of names.
// The seats report starts with the seat total.
func WriteReport(w io.Writer, r *visualize.Renderer, list *models.PollList, names []string, metric visualize.Metric) error {
	var body string
	if metric == visualize.BySeats {
		body = r.Summary(list)
	} else {
		body = r.PollList(list, metric)
	}
	body += aggregateReport(r, list, names, metric)

	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func aggregateReport(r *visualize.Renderer, list *models.PollList, names []string, metric visualize.Metric) string {
	return r.Poll(tally.Aggregate(list, names), metric, r.UnitsPerStar(list, metric))
}
