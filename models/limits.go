// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Input bounds shared by every front end
const (
	// MaxSeats bounds the seat total of an election. It keeps seat
	// arithmetic (seats*100 for percentages) well inside int range.
	MaxSeats = 1_000_000

	// MaxPolls bounds the capacity of a PollList built from user input
	MaxPolls = 1_000
)
