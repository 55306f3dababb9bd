// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the poll tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Trackers (public):

	POST /trackers                    - Create tracker
	GET  /trackers/{id}               - Tracker and its polls as JSON
	GET  /trackers/{id}/visualization - Star bars for every poll
	GET  /trackers/{id}/aggregate     - Star bars for the averaged poll

Admin (requires X-Admin-Key):

	POST /trackers/{id}/polls - Add a poll

Root:

	GET / - Banner

Every tracker route is wrapped with middleware.WithLogging. The caller wraps
the returned mux with middleware.CORS.
*/
package router
