// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package teams holds the static team roster.

The roster is configuration, not data: it is loaded once at startup
(from a JSON file, or the built-in default) and never mutated. Assignments
in the database reference teams by name.

# Loading

	cfg := teams.Default()

	// or from a file:
	cfg, err := teams.Load("teams.json")

The JSON file is an array of team objects:

	[
	  {"name": "Red", "color": "#ef4444", "emoji": "🔴"},
	  {"name": "Blue", "color": "#3b82f6", "emoji": "🔵"}
	]

# Validation

Load and New reject rosters with fewer than two teams, empty or duplicate
names, or a missing color.

# Lookup

	team, ok := cfg.ByName("Red")
	names := cfg.Names() // configuration order, used for stable display
*/
package teams
