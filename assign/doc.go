// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assign implements the one business rule of the system: idempotent
random team assignment.

# Assignment

	svc := assign.NewService(store.New(db), roster)

	result, err := svc.Assign(ctx, "alice")
	// result.Team, result.Color, result.Emoji, result.IsNew

The first call for an identity key picks a team uniformly at random and
persists it; every later call returns the same team with IsNew false.
Selection is pure chance, never a hash of the key.

# Concurrency

Two simultaneous first-time calls for the same key race on the store's
UNIQUE constraint. The loser catches store.ErrConflict and re-reads the
winner's row, so both callers observe the same team and no error.

# Errors

  - ErrEmptyKey: empty/whitespace-only key, rejected before any storage
    access (a client error).
  - ErrUnknownTeam: a stored team name is missing from the configured
    roster, meaning configuration drifted after data was written (a server
    fault, surfaced loudly rather than returning undefined display data).
  - Anything else is a storage fault, wrapped and propagated.

# Statistics

	stats, err := svc.Statistics(ctx)

Returns a count for every configured team, zero-filled for teams nobody
has landed on yet.

# Determinism in tests

NewServiceWithPicker injects the random source:

	svc := assign.NewServiceWithPicker(st, roster, func(n int) int { return 0 })
*/
package assign
