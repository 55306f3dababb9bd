// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// DefaultPartyNames are used when no party names are configured
var DefaultPartyNames = []string{"BQ", "CPC", "Green", "LPC", "NDP", "PPC", "Rhinoceros"}

// UniqueNames trims names and drops blanks and case-insensitive duplicates,
// keeping the first spelling.
func UniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// SplitNames splits a comma separated list of party names and normalizes it
// with UniqueNames.
func SplitNames(s string) []string {
	return UniqueNames(strings.Split(s, ","))
}
