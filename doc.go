// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the poll-tracker command.

poll-tracker follows an election across several opinion polls. Each poll
projects every party's seats and share of the vote; the tracker draws them
as bars of stars with a '|' marking the majority, and averages the polls
into an aggregate.

# Commands

Print a random poll list and its aggregate:

	poll-tracker generate --seats 338 --polls 5 --seed 42 --by votes

Enter polls by hand, or generate them, in an interactive session:

	poll-tracker interactive

Serve trackers over HTTP:

	ADMIN_KEY_SALT=secret poll-tracker serve -p 3318

Every subcommand takes the flags documented in package cliparse; use
--help on a subcommand to list them.

# Configuration

Required settings (serve only):

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC

Optional settings:

  - SEATS (-s), PARTIES (--parties), NUM_POLLS (-n), SEED (--seed)
  - MAX_STARS (--max-stars), METRIC (-b/--by), LOG_LEVEL (--log-level)
  - PORT (-p): Server port (default: 3318)

Variables may also be set in a .env file (--env-file).

# Architecture

  - models: Party, Poll and PollList
  - generator: Random, internally consistent polls
  - visualize: Star bars and text reports
  - tally: Aggregate poll
  - console: Interactive session
  - store: In-memory trackers for the server
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and text helpers
  - auth: Admin keys
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
