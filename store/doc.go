// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists team assignments in an embedded SQLite database.

# Schema

One table:

	assignment (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    identity_key TEXT NOT NULL UNIQUE,
	    team TEXT NOT NULL,
	    created_at TIMESTAMP NOT NULL
	)

CreateSchema initializes it and is safe to call multiple times:

	if err := store.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

# Operations

	s := store.New(conn)

	a, err := s.FindByKey(ctx, key)   // ErrNotFound on miss
	a, err := s.Create(ctx, key, team) // ErrConflict if the key exists
	all, err := s.ListAll(ctx)         // newest first
	counts, err := s.CountByTeam(ctx)  // only teams with rows

# Concurrency

The UNIQUE constraint on identity_key is the single arbiter for concurrent
first-time assignments: of N simultaneous inserts for one key, exactly one
wins and the rest receive ErrConflict. Callers recover by re-reading. No
application-level locking exists or is needed.

ErrNotFound and ErrConflict are normal-path outcomes; anything else from
these methods is a storage fault.
*/
package store
