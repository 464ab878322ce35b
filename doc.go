// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sorting Hat server.

Sorting Hat assigns each visitor to one of a fixed set of teams. A QR code
projected at the venue deep-links to the assignment page; the page posts
the visitor's name or device fingerprint, the server picks a random team
on the first visit and returns the same team forever after.

# Starting the Server

Everything has a default, so this is enough:

	go run .

Or with flags:

	go run . -p 3000 -d sortinghat.db -u https://party.example.com

# Configuration

Optional settings (flags fall back to env, env falls back to defaults):

  - PORT (-p): Server port (default: 3000)
  - DATABASE_PATH (-d): SQLite file (default: ./sortinghat.db)
  - BASE_URL (-u): Absolute URL used in the QR deep link
  - TEAMS_FILE (-teams): JSON team roster (default: built-in four teams)
  - STATIC_DIR (-s): Dashboard/assignment pages (default: ./static)

A .env file is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - teams: static team roster (names, colors, emoji)
  - store: the assignment table in embedded SQLite
  - assign: idempotent random assignment and statistics
  - handlers: HTTP request handlers (assign, stats, QR, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
