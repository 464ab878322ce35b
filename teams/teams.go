// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package teams

import (
	"encoding/json"
	"fmt"
	"os"
)

// Team is one entry of the fixed team roster.
type Team struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji,omitempty"`
}

// Config is the immutable team roster, loaded once at startup.
// Order is the configuration-file order and is used for stable display.
type Config struct {
	teams  []Team
	byName map[string]Team
}

// Default returns the built-in four-team roster used when no teams file
// is configured.
func Default() Config {
	cfg, err := New([]Team{
		{Name: "Red", Color: "#ef4444", Emoji: "🔴"},
		{Name: "Blue", Color: "#3b82f6", Emoji: "🔵"},
		{Name: "Green", Color: "#22c55e", Emoji: "🟢"},
		{Name: "Yellow", Color: "#eab308", Emoji: "🟡"},
	})
	if err != nil {
		panic(err) // the built-in roster must always validate
	}
	return cfg
}

// New validates the roster and builds a Config.
// Requires at least two teams with unique non-empty names and a color each.
func New(roster []Team) (Config, error) {
	if len(roster) < 2 {
		return Config{}, fmt.Errorf("team roster needs at least 2 teams, got %d", len(roster))
	}

	byName := make(map[string]Team, len(roster))
	for i, team := range roster {
		if team.Name == "" {
			return Config{}, fmt.Errorf("team %d has an empty name", i)
		}
		if team.Color == "" {
			return Config{}, fmt.Errorf("team %q has no color", team.Name)
		}
		if _, dup := byName[team.Name]; dup {
			return Config{}, fmt.Errorf("duplicate team name %q", team.Name)
		}
		byName[team.Name] = team
	}

	teams := make([]Team, len(roster))
	copy(teams, roster)

	return Config{teams: teams, byName: byName}, nil
}

// Load reads a roster from a JSON file (an array of team objects).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read teams file: %w", err)
	}

	var roster []Team
	if err := json.Unmarshal(data, &roster); err != nil {
		return Config{}, fmt.Errorf("failed to parse teams file: %w", err)
	}

	return New(roster)
}

// Len returns the number of configured teams.
func (c Config) Len() int {
	return len(c.teams)
}

// At returns the team at position i in configuration order.
func (c Config) At(i int) Team {
	return c.teams[i]
}

// Names returns the team names in configuration order.
func (c Config) Names() []string {
	names := make([]string, len(c.teams))
	for i, team := range c.teams {
		names[i] = team.Name
	}
	return names
}

// ByName looks up a team by its name.
func (c Config) ByName(name string) (Team, bool) {
	team, ok := c.byName[name]
	return team, ok
}
