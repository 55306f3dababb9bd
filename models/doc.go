// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll data shapes and the API request/response types.

# Domain Types

  - Party: name, projected seats, projected vote share (0-1), optional color
  - Poll: named, fixed-capacity set of parties in insertion order
  - PollList: fixed-capacity list of polls plus the election's seat total

Party names are unique within a poll, compared case-insensitively. Adding a
party whose name is already present replaces it in place:

	poll := models.NewPoll("Poll0", 3)
	poll.AddParty(models.NewPartyWithProjection("NDP", 24, 0.18))
	poll.AddParty(models.NewPartyWithProjection("ndp", 30, 0.21)) // replaces

# Invalid Input

Nothing in this package fails hard. Invalid input is recovered locally,
logged with slog.Warn, and reported through a sentinel error:

  - SetSeats: negative seats rejected, previous value kept (ErrNegativeSeats)
  - SetVoteShare: share outside [0,1] set to 0 (ErrVoteShareRange)
  - NewPoll: capacity < 1 uses DefaultPollCapacity (10)
  - NewPollList: polls < 1 uses DefaultNumPolls (5), seats < 1 uses DefaultSeats (10)
  - AddParty: ErrPollFull when a new name exceeds capacity
  - AddPoll: ErrNilPoll, ErrPollListFull

# Request Types

  - CreateTrackerRequest: seats, parties, num_polls, random, seed, polls
  - PollInput / PartyInput: manually entered poll data

# Response Types

  - CreateTrackerResponse: tracker_id, admin_key
  - AddPollResponse: name, poll_count
  - TrackerView / PollView: JSON snapshot of a tracker
  - ErrorResponse: error, message

Poll, Party and PollList are not safe for concurrent mutation.
*/
package models
