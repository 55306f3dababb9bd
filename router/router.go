// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/poll-tracker/cliparse"
	"github.com/danielhkuo/poll-tracker/handlers"
	"github.com/danielhkuo/poll-tracker/middleware"
	"github.com/danielhkuo/poll-tracker/store"
)

// Banner is served at the root path
const Banner = "poll-tracker API v1"

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	trackerHandler := handlers.NewTrackerHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Trackers
	mux.HandleFunc("POST /trackers", middleware.WithLogging(trackerHandler.CreateTracker))
	mux.HandleFunc("GET /trackers/{id}", middleware.WithLogging(trackerHandler.GetTracker))
	mux.HandleFunc("GET /trackers/{id}/visualization", middleware.WithLogging(trackerHandler.GetVisualization))
	mux.HandleFunc("GET /trackers/{id}/aggregate", middleware.WithLogging(trackerHandler.GetAggregate))

	// Admin operations
	mux.HandleFunc("POST /trackers/{id}/polls", middleware.WithLogging(trackerHandler.AddPoll))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}
