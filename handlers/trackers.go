// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/poll-tracker/auth"
	"github.com/danielhkuo/poll-tracker/cliparse"
	"github.com/danielhkuo/poll-tracker/generator"
	"github.com/danielhkuo/poll-tracker/middleware"
	"github.com/danielhkuo/poll-tracker/models"
	"github.com/danielhkuo/poll-tracker/store"
	"github.com/danielhkuo/poll-tracker/tally"
	"github.com/danielhkuo/poll-tracker/visualize"
)

// MaxTrackerPolls bounds num_polls on a single tracker
const MaxTrackerPolls = 100

var ErrSeatsAboveTotal = errors.New("seats exceed the election's seat total")

type TrackerHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	metric   visualize.Metric
	renderer *visualize.Renderer
}

func NewTrackerHandler(s *store.Store, cfg cliparse.Config) *TrackerHandler {
	metric, err := visualize.ParseMetric(cfg.Metric)
	if err != nil && cfg.Metric != "" {
		slog.Warn("unknown default metric, using seats", "metric", cfg.Metric)
	}
	return &TrackerHandler{
		store:    s,
		cfg:      cfg,
		metric:   metric,
		renderer: visualize.NewRenderer(visualize.WithMaxStars(cfg.MaxStars)),
	}
}

// CreateTracker handles POST /trackers
func (h *TrackerHandler) CreateTracker(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTrackerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Fill omitted fields from server configuration
	if req.Seats == 0 {
		req.Seats = h.cfg.Seats
	}
	if len(req.Parties) == 0 {
		req.Parties = h.cfg.Parties
	}
	if req.NumPolls == 0 {
		req.NumPolls = h.cfg.NumPolls
		if len(req.Polls) > 0 {
			req.NumPolls = len(req.Polls)
		}
	}

	if req.Seats < 1 || req.Seats > models.MaxSeats {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("seats must be between 1 and %d", models.MaxSeats))
		return
	}
	if req.Random && len(req.Polls) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "random and polls are mutually exclusive")
		return
	}
	if req.NumPolls < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "num_polls must be at least 1")
		return
	}
	if req.NumPolls > MaxTrackerPolls {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("num_polls must be at most %d", MaxTrackerPolls))
		return
	}
	if len(req.Polls) > req.NumPolls {
		middleware.ErrorResponse(w, http.StatusBadRequest, "more polls than num_polls")
		return
	}

	polls := make([]*models.Poll, 0, len(req.Polls))
	for _, in := range req.Polls {
		p, err := buildPoll(in, req.Seats)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		polls = append(polls, p)
	}

	tr, err := h.store.Create(req.Seats, models.UniqueNames(req.Parties), req.NumPolls)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Random {
		gen := h.newGenerator(req.Seats, req.Seed)
		for i := range req.NumPolls {
			polls = append(polls, gen.GeneratePoll("Poll"+strconv.Itoa(i), tr.Parties))
		}
	}
	for _, p := range polls {
		if _, err := tr.AddPoll(p); err != nil {
			slog.Error("failed to add poll to new tracker", "tracker_id", tr.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create tracker")
			return
		}
	}

	slog.Info("tracker created", "tracker_id", tr.ID, "seats", tr.Seats, "polls", len(polls), "random", req.Random)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateTrackerResponse{
		TrackerID: tr.ID,
		AdminKey:  auth.GenerateAdminKey(tr.ID, h.cfg.AdminKeySalt),
	})
}

// GetTracker handles GET /trackers/{id}
func (h *TrackerHandler) GetTracker(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, tr.Snapshot())
}

// GetVisualization handles GET /trackers/{id}/visualization?by=seats|votes
func (h *TrackerHandler) GetVisualization(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.lookup(w, r)
	if !ok {
		return
	}
	metric, ok := h.metric(w, r)
	if !ok {
		return
	}

	var report string
	tr.View(func(list *models.PollList) {
		report = h.renderer.PollList(list, metric)
	})
	middleware.TextResponse(w, http.StatusOK, report)
}

// GetAggregate handles GET /trackers/{id}/aggregate?by=seats|votes
func (h *TrackerHandler) GetAggregate(w http.ResponseWriter, r *http.Request) {
	tr, ok := h.lookup(w, r)
	if !ok {
		return
	}
	metric, ok := h.metric(w, r)
	if !ok {
		return
	}

	var report string
	tr.View(func(list *models.PollList) {
		agg := tally.Aggregate(list, tr.Parties)
		report = h.renderer.Poll(agg, metric, h.renderer.UnitsPerStar(list, metric))
	})
	middleware.TextResponse(w, http.StatusOK, report)
}

// AddPoll handles POST /trackers/{id}/polls
func (h *TrackerHandler) AddPoll(w http.ResponseWriter, r *http.Request) {
	trackerID := r.PathValue("id")
	if trackerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "tracker_id is required")
		return
	}

	// Validate admin key
	if err := auth.ValidateAdminKey(trackerID, auth.AdminKeyFromRequest(r), h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	tr, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var in models.PollInput
	if err := middleware.ParseJSONBody(r, &in); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	poll, err := buildPoll(in, tr.Seats)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := tr.AddPoll(poll)
	if errors.Is(err, models.ErrPollListFull) {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll list is full")
		return
	}
	if err != nil {
		slog.Error("failed to add poll", "tracker_id", tr.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add poll")
		return
	}

	slog.Info("poll added", "tracker_id", tr.ID, "poll", poll.Name(), "poll_count", count)

	middleware.JSONResponse(w, http.StatusCreated, models.AddPollResponse{
		Name:      poll.Name(),
		PollCount: count,
	})
}

func (h *TrackerHandler) lookup(w http.ResponseWriter, r *http.Request) (*store.Tracker, bool) {
	tr, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Tracker not found")
		return nil, false
	}
	return tr, true
}

// metric reads ?by=, defaulting to the configured metric
func (h *TrackerHandler) metric(w http.ResponseWriter, r *http.Request) (visualize.Metric, bool) {
	by := r.URL.Query().Get("by")
	if by == "" {
		return h.metric, true
	}
	m, err := visualize.ParseMetric(by)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "by must be seats or votes")
		return 0, false
	}
	return m, true
}

// newGenerator prefers the request seed, then the configured seed, then the clock
func (h *TrackerHandler) newGenerator(seats int, seed *uint64) *generator.Generator {
	switch {
	case seed != nil:
		return generator.NewSeeded(seats, *seed)
	case h.cfg.Seed != nil:
		return generator.NewSeeded(seats, *h.cfg.Seed)
	default:
		return generator.New(seats, nil)
	}
}

// buildPoll converts a manual poll from a request body, rejecting values the
// Party setters would otherwise clamp and seat counts above the election's
// total.
func buildPoll(in models.PollInput, seats int) (*models.Poll, error) {
	if in.Name == "" {
		return nil, errors.New("poll name is required")
	}
	if len(in.Parties) == 0 {
		return nil, errors.New("poll needs at least one party")
	}

	poll := models.NewPoll(in.Name, len(in.Parties))
	for _, pi := range in.Parties {
		if pi.Name == "" {
			return nil, errors.New("party name is required")
		}
		if pi.Seats > float64(seats) {
			return nil, fmt.Errorf("party %s: %w", pi.Name, ErrSeatsAboveTotal)
		}
		party := models.NewParty(pi.Name)
		if err := party.SetSeats(pi.Seats); err != nil {
			return nil, fmt.Errorf("party %s: %w", pi.Name, err)
		}
		if err := party.SetVoteShare(pi.VoteShare); err != nil {
			return nil, fmt.Errorf("party %s: %w", pi.Name, err)
		}
		party.Color = pi.Color
		if err := poll.AddParty(party); err != nil {
			return nil, fmt.Errorf("failed to add party %s: %w", pi.Name, err)
		}
	}
	return poll, nil
}
