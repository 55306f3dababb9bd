// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console runs the interactive poll tracker session on a terminal or
any reader/writer pair.

# Session

	s := console.New(os.Stdin, os.Stdout, console.WithSeed(42))
	err := s.Run()

The session asks, in order, for the number of seats, the party names
(comma separated), the number of polls, and whether to generate random polls.
Without random polls it asks for each poll's name and, per party, the
projected seats and vote share (as a decimal).

It then loops, asking for a visualization type (seats or votes) and an option:

	all        every poll, one shared scale
	aggregate  the averaged poll
	quit       end the session

Invalid answers are asked again. Closing the input ends the session without
error.

# Reports

WriteReport prints a whole poll list followed by its aggregate; the generate
command uses it directly.
*/
package console
