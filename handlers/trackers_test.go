// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/poll-tracker/auth"
	"github.com/danielhkuo/poll-tracker/models"
	"github.com/danielhkuo/poll-tracker/store"
	"github.com/danielhkuo/poll-tracker/tally"
	"github.com/danielhkuo/poll-tracker/testutil"
	"github.com/danielhkuo/poll-tracker/visualize"
)

func newTestHandler() (*TrackerHandler, *store.Store) {
	s := store.New()
	return NewTrackerHandler(s, testutil.GetTestConfig()), s
}

func createTracker(t *testing.T, h *TrackerHandler, body any) models.CreateTrackerResponse {
	t.Helper()
	w := httptest.NewRecorder()
	h.CreateTracker(w, testutil.MakeRequest("POST", "/trackers", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Create tracker failed: %d - %s", w.Code, w.Body.String())
	}
	var resp models.CreateTrackerResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func getTracker(t *testing.T, h *TrackerHandler, id string) models.TrackerView {
	t.Helper()
	req := testutil.MakeRequest("GET", "/trackers/"+id, nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.GetTracker(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.TrackerView
	testutil.AssertJSON(t, w, &view)
	return view
}

func seed(v uint64) *uint64 { return &v }

func TestCreateTracker_Random(t *testing.T) {
	h, _ := newTestHandler()

	resp := createTracker(t, h, models.CreateTrackerRequest{
		Seats:    338,
		Parties:  []string{"BQ", "CPC", "LPC", "NDP"},
		NumPolls: 2,
		Random:   true,
		Seed:     seed(7),
	})

	if _, err := uuid.Parse(resp.TrackerID); err != nil {
		t.Errorf("Expected UUID tracker ID, got %q", resp.TrackerID)
	}
	if err := auth.ValidateAdminKey(resp.TrackerID, resp.AdminKey, "test-admin-salt"); err != nil {
		t.Errorf("Returned admin key does not validate: %v", err)
	}

	view := getTracker(t, h, resp.TrackerID)
	if view.Seats != 338 || view.Capacity != 2 {
		t.Errorf("Expected 338 seats and capacity 2, got %d and %d", view.Seats, view.Capacity)
	}
	if len(view.Polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(view.Polls))
	}
	for i, poll := range view.Polls {
		if poll.Name != "Poll"+string(rune('0'+i)) {
			t.Errorf("Expected poll name Poll%d, got %s", i, poll.Name)
		}
		var seats, share float64
		for _, p := range poll.Parties {
			seats += p.Seats
			share += p.VoteShare
		}
		if seats != 338 {
			t.Errorf("%s: seats sum to %v, want 338", poll.Name, seats)
		}
		if share < 0.999999 || share > 1.000001 {
			t.Errorf("%s: vote shares sum to %v, want 1", poll.Name, share)
		}
	}
}

func TestCreateTracker_SeedIsDeterministic(t *testing.T) {
	h, _ := newTestHandler()
	body := models.CreateTrackerRequest{Random: true, Seed: seed(99)}

	first := getTracker(t, h, createTracker(t, h, body).TrackerID)
	second := getTracker(t, h, createTracker(t, h, body).TrackerID)

	if first.ID == second.ID {
		t.Fatal("Expected distinct tracker IDs")
	}
	for i := range first.Polls {
		a, b := first.Polls[i].Parties, second.Polls[i].Parties
		if len(a) != len(b) {
			t.Fatalf("Poll %d: party counts differ", i)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Errorf("Poll %d party %d: %+v != %+v", i, j, a[j], b[j])
			}
		}
	}
}

func TestCreateTracker_ConfigSeedZero(t *testing.T) {
	cfg := testutil.GetTestConfig()
	zero := uint64(0)
	cfg.Seed = &zero
	h := NewTrackerHandler(store.New(), cfg)
	body := models.CreateTrackerRequest{Random: true, NumPolls: 2}

	first := getTracker(t, h, createTracker(t, h, body).TrackerID)
	second := getTracker(t, h, createTracker(t, h, body).TrackerID)

	for i := range first.Polls {
		a, b := first.Polls[i].Parties, second.Polls[i].Parties
		for j := range a {
			if a[j] != b[j] {
				t.Errorf("Poll %d party %d: seed 0 should be deterministic, %+v != %+v", i, j, a[j], b[j])
			}
		}
	}
}

func TestCreateTracker_Defaults(t *testing.T) {
	h, _ := newTestHandler()
	cfg := testutil.GetTestConfig()

	view := getTracker(t, h, createTracker(t, h, map[string]any{}).TrackerID)

	if view.Seats != cfg.Seats {
		t.Errorf("Expected %d seats, got %d", cfg.Seats, view.Seats)
	}
	if view.Capacity != cfg.NumPolls {
		t.Errorf("Expected capacity %d, got %d", cfg.NumPolls, view.Capacity)
	}
	if strings.Join(view.Parties, ",") != strings.Join(cfg.Parties, ",") {
		t.Errorf("Expected parties %v, got %v", cfg.Parties, view.Parties)
	}
	if len(view.Polls) != 0 {
		t.Errorf("Expected no polls, got %d", len(view.Polls))
	}
}

func TestCreateTracker_Manual(t *testing.T) {
	h, _ := newTestHandler()

	resp := createTracker(t, h, models.CreateTrackerRequest{
		Seats:   10,
		Parties: []string{"A", "B"},
		Polls: []models.PollInput{{
			Name: "Leger",
			Parties: []models.PartyInput{
				{Name: "A", Seats: 6, VoteShare: 0.55, Color: "#1f77b4"},
				{Name: "B", Seats: 4, VoteShare: 0.45},
			},
		}},
	})

	view := getTracker(t, h, resp.TrackerID)
	if view.Capacity != 1 {
		t.Errorf("Expected capacity to default to the poll count, got %d", view.Capacity)
	}
	if len(view.Polls) != 1 || view.Polls[0].Name != "Leger" {
		t.Fatalf("Unexpected polls %+v", view.Polls)
	}
	got := view.Polls[0].Parties[0]
	if got.Name != "A" || got.Seats != 6 || got.VoteShare != 0.55 || got.Color != "#1f77b4" {
		t.Errorf("Unexpected first party %+v", got)
	}
}

func TestCreateTracker_Invalid(t *testing.T) {
	validPoll := models.PollInput{Name: "P", Parties: []models.PartyInput{{Name: "A", Seats: 1, VoteShare: 1}}}

	testCases := []struct {
		name string
		body any
	}{
		{"negative seats", models.CreateTrackerRequest{Seats: -5}},
		{"seats above max", models.CreateTrackerRequest{Seats: models.MaxSeats + 1}},
		{"negative polls", models.CreateTrackerRequest{NumPolls: -1}},
		{"too many polls", models.CreateTrackerRequest{NumPolls: MaxTrackerPolls + 1}},
		{"blank parties", models.CreateTrackerRequest{Parties: []string{" ", ""}}},
		{"random with polls", models.CreateTrackerRequest{Random: true, Polls: []models.PollInput{validPoll}}},
		{"polls exceed capacity", models.CreateTrackerRequest{NumPolls: 1, Polls: []models.PollInput{validPoll, validPoll}}},
		{"unnamed poll", models.CreateTrackerRequest{Polls: []models.PollInput{{Parties: validPoll.Parties}}}},
		{"empty poll", models.CreateTrackerRequest{Polls: []models.PollInput{{Name: "P"}}}},
		{"negative party seats", models.CreateTrackerRequest{Polls: []models.PollInput{{
			Name: "P", Parties: []models.PartyInput{{Name: "A", Seats: -1}},
		}}}},
		{"vote share above one", models.CreateTrackerRequest{Polls: []models.PollInput{{
			Name: "P", Parties: []models.PartyInput{{Name: "A", VoteShare: 1.5}},
		}}}},
		{"party seats above total", models.CreateTrackerRequest{Seats: 10, Polls: []models.PollInput{{
			Name: "P", Parties: []models.PartyInput{{Name: "A", Seats: 1e13, VoteShare: 0.5}},
		}}}},
		{"party seats just above total", models.CreateTrackerRequest{Seats: 10, Polls: []models.PollInput{{
			Name: "P", Parties: []models.PartyInput{{Name: "A", Seats: 10.5}},
		}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, s := newTestHandler()
			w := httptest.NewRecorder()
			h.CreateTracker(w, testutil.MakeRequest("POST", "/trackers", tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			if s.Len() != 0 {
				t.Errorf("Expected no tracker stored, got %d", s.Len())
			}
		})
	}

	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newTestHandler()
		req := httptest.NewRequest("POST", "/trackers", strings.NewReader("{nope"))
		w := httptest.NewRecorder()
		h.CreateTracker(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetTracker_NotFound(t *testing.T) {
	h, _ := newTestHandler()

	for _, id := range []string{"missing", uuid.NewString()} {
		req := testutil.MakeRequest("GET", "/trackers/"+id, nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.GetTracker(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	}
}

func TestGetVisualization(t *testing.T) {
	h, s := newTestHandler()
	cfg := testutil.GetTestConfig()
	tr, _ := testutil.CreateTestTracker(t, s, cfg, 3, 3)
	renderer := visualize.NewRenderer()

	testCases := []struct {
		query  string
		metric visualize.Metric
	}{
		{"", visualize.BySeats},
		{"?by=seats", visualize.BySeats},
		{"?by=VOTES", visualize.ByVotes},
	}

	for _, tc := range testCases {
		t.Run("by"+tc.query, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/trackers/"+tr.ID+"/visualization"+tc.query, nil, nil)
			req.SetPathValue("id", tr.ID)
			w := httptest.NewRecorder()
			h.GetVisualization(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("Expected text/plain, got %s", ct)
			}

			var want string
			tr.View(func(list *models.PollList) {
				want = renderer.PollList(list, tc.metric)
			})
			if w.Body.String() != want {
				t.Errorf("Unexpected report:\n%s\nwant:\n%s", w.Body.String(), want)
			}
		})
	}

	t.Run("bad metric", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/trackers/"+tr.ID+"/visualization?by=colour", nil, nil)
		req.SetPathValue("id", tr.ID)
		w := httptest.NewRecorder()
		h.GetVisualization(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetAggregate(t *testing.T) {
	h, s := newTestHandler()
	cfg := testutil.GetTestConfig()
	tr, _ := testutil.CreateTestTracker(t, s, cfg, 3, 2)

	req := testutil.MakeRequest("GET", "/trackers/"+tr.ID+"/aggregate?by=votes", nil, nil)
	req.SetPathValue("id", tr.ID)
	w := httptest.NewRecorder()
	h.GetAggregate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if lines[0] != tally.AggregateName {
		t.Errorf("Expected first line %q, got %q", tally.AggregateName, lines[0])
	}
	if len(lines) != 1+len(cfg.Parties) {
		t.Fatalf("Expected %d lines, got %d:\n%s", 1+len(cfg.Parties), len(lines), body)
	}
	for i, name := range cfg.Parties {
		if !strings.Contains(lines[i+1], " "+name+" (") {
			t.Errorf("Line %d should describe %s: %q", i+1, name, lines[i+1])
		}
	}
}

func TestAddPoll(t *testing.T) {
	h, s := newTestHandler()
	cfg := testutil.GetTestConfig()
	tr, adminKey := testutil.CreateTestTracker(t, s, cfg, 2, 1)

	poll := models.PollInput{
		Name: "Nanos",
		Parties: []models.PartyInput{
			{Name: "CPC", Seats: 60, VoteShare: 0.5},
			{Name: "LPC", Seats: 40, VoteShare: 0.5},
		},
	}

	addPoll := func(key string, body any) *httptest.ResponseRecorder {
		headers := map[string]string{}
		if key != "" {
			headers["X-Admin-Key"] = key
		}
		req := testutil.MakeRequest("POST", "/trackers/"+tr.ID+"/polls", body, headers)
		req.SetPathValue("id", tr.ID)
		w := httptest.NewRecorder()
		h.AddPoll(w, req)
		return w
	}

	t.Run("missing admin key", func(t *testing.T) {
		testutil.AssertStatus(t, addPoll("", poll), http.StatusUnauthorized)
	})

	t.Run("wrong admin key", func(t *testing.T) {
		testutil.AssertStatus(t, addPoll("wrong", poll), http.StatusUnauthorized)
	})

	t.Run("invalid poll", func(t *testing.T) {
		testutil.AssertStatus(t, addPoll(adminKey, models.PollInput{Name: "Empty"}), http.StatusBadRequest)
	})

	t.Run("party seats above total", func(t *testing.T) {
		tooMany := models.PollInput{
			Name:    "Huge",
			Parties: []models.PartyInput{{Name: "CPC", Seats: float64(cfg.Seats) + 1, VoteShare: 0.5}},
		}
		testutil.AssertStatus(t, addPoll(adminKey, tooMany), http.StatusBadRequest)
		if n := len(tr.Snapshot().Polls); n != 1 {
			t.Errorf("Expected rejected poll not to be stored, got %d polls", n)
		}
	})

	t.Run("success", func(t *testing.T) {
		w := addPoll(adminKey, poll)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.AddPollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Name != "Nanos" || resp.PollCount != 2 {
			t.Errorf("Unexpected response %+v", resp)
		}
	})

	t.Run("list full", func(t *testing.T) {
		testutil.AssertStatus(t, addPoll(adminKey, poll), http.StatusConflict)
	})

	t.Run("unknown tracker", func(t *testing.T) {
		id := uuid.NewString()
		req := testutil.MakeRequest("POST", "/trackers/"+id+"/polls", poll, map[string]string{
			"X-Admin-Key": auth.GenerateAdminKey(id, cfg.AdminKeySalt),
		})
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.AddPoll(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
