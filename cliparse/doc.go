// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Seats: seats available in the election (default: 338, at most models.MaxSeats)
  - Parties: party names, deduplicated case-insensitively
  - NumPolls: number of polls to track (default: 3, at most models.MaxPolls)
  - Seed: random seed, nil when unset so generators seed from the clock
  - MaxStars: bar width (default: 18)
  - Metric: "seats" or "votes", lowercased (default: seats)
  - LogLevel: slog level (default: info)
  - Port: server listen port (default: 3318)
  - AdminKeySalt: secret for admin key HMAC (required by serve)

# CLI Flags

	-s, --seats       Seats in the election
	    --parties     Comma separated party names
	-n, --polls       Number of polls
	    --seed        Random seed
	    --max-stars   Bar width
	-b, --by          seats or votes
	    --log-level   debug, info, warn, error
	-p, --port        Server port
	    --admin-salt  Admin key salt
	    --env-file    Environment file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	SEATS          → --seats
	PARTIES        → --parties
	NUM_POLLS      → --polls
	SEED           → --seed
	MAX_STARS      → --max-stars
	METRIC         → --by
	LOG_LEVEL      → --log-level
	PORT           → --port
	ADMIN_KEY_SALT → --admin-salt

Variables may also come from the env file, which never overrides variables
already set. CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for out of range values (seats, polls, stars,
port), an empty party list, an unknown metric or log level. ValidateServe
additionally requires ADMIN_KEY_SALT.
*/
package cliparse
