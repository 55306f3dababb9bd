// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package generator creates random poll data that stays internally consistent.

# Randomness

A Generator owns one *rand.Rand. Pass a seeded source (or use NewSeeded) to
get reproducible polls:

	g := generator.NewSeeded(338, 42)
	list := g.GeneratePollList(3, models.DefaultPartyNames)

# Party Generation

GenerateParty draws a whole number of seats in [0, maxSeats]. The vote
percentage is then drawn from a band 5 points either side of the party's
share of seats (never below 0) and capped at maxPercent. Budgets are clamped
to the election's seats and to 100 percent.

Seat totals are limited to models.MaxSeats; larger totals are capped with a
warning.

# Poll Generation

GeneratePoll keeps two budgets, seats left and percent left. Parties are
picked in random order and generated against the current budgets; the last
party gets everything that remains. Seats always sum to the election total
and vote shares to 1.0.
*/
package generator
