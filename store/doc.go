// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps poll trackers in memory for the HTTP server.

# Trackers

A Tracker wraps one election's PollList with the party names it follows:

	s := store.New()
	tr, err := s.Create(338, []string{"CPC", "LPC"}, 3)
	tr, err = s.Get(tr.ID)

Tracker IDs are random UUIDs. Nothing is persisted; trackers live until the
process exits.

# Locking

The registry map is guarded by an RWMutex. Each tracker has its own mutex,
since Poll and PollList are not safe for concurrent use. Handlers touch a
tracker's polls only through the methods on Tracker:

	err := tr.AddPoll(poll)
	tr.View(func(list *models.PollList) {
		// read-only access
	})
*/
package store
