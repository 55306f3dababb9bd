// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package visualize renders poll projections as fixed-width star bars.

# Bars

Bar converts a value into floor(value/unitsPerStar) stars on a bar that is
maxStars wide, with a '|' divider at the majority point ceil(maxStars/2):

	*********|          value 9, 18 stars, 1 per star (exactly a majority)
	*****    |          value 5
	*********|****      value 13

A value that fills more than maxStars stars overflows past the end of the
bar, up to maxStars extra stars. Negative scales are rejected with ErrNegativeScale and an empty result.

# Reports

A Renderer builds multi-line reports:

	r := visualize.NewRenderer()
	fmt.Print(r.PollList(list, visualize.BySeats))

Every poll in a list shares one scale (UnitsPerStar): seats are spread over
the bar rounding up, votes use floor(100/maxStars)+1 percent per star.
Parties are listed in the order they were added to the poll.

# Color

WithStyle(true) paints each bar with lipgloss. A party's own Color wins;
otherwise PaletteColor picks one from its name, so a party keeps its color
in every poll. Styling is only enabled for terminals; lipgloss also drops the
escape codes when the output cannot show them.
*/
package visualize
