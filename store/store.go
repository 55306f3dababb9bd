// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/poll-tracker/models"
)

var (
	ErrNotFound   = errors.New("tracker not found")
	ErrNoParties  = errors.New("at least one party required")
	ErrBadSeats   = fmt.Errorf("seats must be between 1 and %d", models.MaxSeats)
	ErrBadNumPoll = errors.New("number of polls must be at least 1")
)

// Tracker follows one election across a fixed number of polls.
type Tracker struct {
	ID        string
	Seats     int
	Parties   []string
	CreatedAt time.Time

	mu   sync.Mutex
	list *models.PollList
}

// AddPoll appends a poll under the tracker lock and returns the new poll count.
func (t *Tracker) AddPoll(p *models.Poll) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.list.AddPoll(p)
	return t.list.Len(), err
}

// View runs fn with the poll list while holding the tracker lock.
// fn must not keep the list after returning.
func (t *Tracker) View(fn func(list *models.PollList)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.list)
}

// Snapshot returns a JSON friendly copy of the tracker.
func (t *Tracker) Snapshot() models.TrackerView {
	view := models.TrackerView{
		ID:        t.ID,
		Seats:     t.Seats,
		Parties:   slices.Clone(t.Parties),
		CreatedAt: t.CreatedAt,
	}
	t.View(func(list *models.PollList) {
		view.Capacity = list.Capacity()
		view.Polls = make([]models.PollView, 0, list.Len())
		for _, p := range list.Polls() {
			view.Polls = append(view.Polls, models.NewPollView(p))
		}
	})
	return view
}

type Store struct {
	mu       sync.RWMutex
	trackers map[string]*Tracker
}

func New() *Store {
	return &Store{trackers: make(map[string]*Tracker)}
}

// Create registers an empty tracker with room for numPolls polls.
func (s *Store) Create(seats int, parties []string, numPolls int) (*Tracker, error) {
	if seats < 1 || seats > models.MaxSeats {
		return nil, ErrBadSeats
	}
	if numPolls < 1 {
		return nil, ErrBadNumPoll
	}
	if len(parties) == 0 {
		return nil, ErrNoParties
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracker ID: %w", err)
	}

	t := &Tracker{
		ID:        id.String(),
		Seats:     seats,
		Parties:   slices.Clone(parties),
		CreatedAt: time.Now().UTC(),
		list:      models.NewPollList(numPolls, seats),
	}

	s.mu.Lock()
	s.trackers[t.ID] = t
	s.mu.Unlock()

	slog.Debug("tracker stored", "tracker_id", t.ID, "seats", seats, "polls", numPolls)
	return t, nil
}

// Get looks up a tracker by ID.
func (s *Store) Get(id string) (*Tracker, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trackers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// Len returns the number of trackers held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trackers)
}
