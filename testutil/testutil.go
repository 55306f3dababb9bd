// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/poll-tracker/auth"
	"github.com/danielhkuo/poll-tracker/cliparse"
	"github.com/danielhkuo/poll-tracker/generator"
	"github.com/danielhkuo/poll-tracker/models"
	"github.com/danielhkuo/poll-tracker/store"
)

// TestParties is the party list used by test trackers
var TestParties = []string{"CPC", "LPC", "NDP"}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	seed := uint64(42)
	return cliparse.Config{
		Port:         3318,
		Seats:        100,
		Parties:      TestParties,
		NumPolls:     3,
		Seed:         &seed,
		MaxStars:     cliparse.DefaultMaxStars,
		Metric:       models.MetricSeats,
		AdminKeySalt: "test-admin-salt",
		LogLevel:     slog.LevelInfo,
	}
}

// CreateTestTracker stores a tracker with room for capacity polls, adds
// filled seeded random polls, and returns it with its admin key.
func CreateTestTracker(t *testing.T, s *store.Store, cfg cliparse.Config, capacity, filled int) (*store.Tracker, string) {
	t.Helper()

	tr, err := s.Create(cfg.Seats, cfg.Parties, capacity)
	if err != nil {
		t.Fatalf("Failed to create test tracker: %v", err)
	}

	gen := generator.New(cfg.Seats, nil)
	if cfg.Seed != nil {
		gen = generator.NewSeeded(cfg.Seats, *cfg.Seed)
	}
	for i := range filled {
		if _, err := tr.AddPoll(gen.GeneratePoll("Poll"+strconv.Itoa(i), cfg.Parties)); err != nil {
			t.Fatalf("Failed to add test poll: %v", err)
		}
	}

	return tr, auth.GenerateAdminKey(tr.ID, cfg.AdminKeySalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
