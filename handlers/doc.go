// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll tracker API.

# Handler Types

TrackerHandler serves every tracker endpoint. It is created with the
tracker store and the server configuration:

	trackerHandler := handlers.NewTrackerHandler(store, cfg)

# Trackers

A tracker is one election followed over a fixed number of polls:

	POST /trackers                     → CreateTracker (returns admin_key)
	GET  /trackers/{id}                → GetTracker (JSON)
	GET  /trackers/{id}/visualization  → GetVisualization (text bars)
	GET  /trackers/{id}/aggregate      → GetAggregate (text bars)
	POST /trackers/{id}/polls          → AddPoll (admin only)

CreateTracker either generates num_polls random polls (random: true, with an
optional seed) or stores the polls given in the request body. Omitted seats,
parties and num_polls fall back to the server configuration.

AddPoll requires the X-Admin-Key header and returns 409 Conflict once the
tracker holds num_polls polls.

# Visualization

Both text endpoints take ?by=seats or ?by=votes, defaulting to the configured
metric. Every poll of a tracker shares one scale, so bars are comparable
across polls. The aggregate averages each tracked party over the polls that
include it.
*/
package handlers
