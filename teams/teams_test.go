// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package teams

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Len() != 4 {
		t.Errorf("expected 4 default teams, got %d", cfg.Len())
	}

	for _, name := range cfg.Names() {
		team, ok := cfg.ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) missed a listed team", name)
		}
		if team.Color == "" {
			t.Errorf("team %q has no color", name)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		roster []Team
	}{
		{"empty roster", nil},
		{"single team", []Team{{Name: "Solo", Color: "#fff"}}},
		{"empty name", []Team{{Name: "", Color: "#fff"}, {Name: "B", Color: "#000"}}},
		{"missing color", []Team{{Name: "A", Color: ""}, {Name: "B", Color: "#000"}}},
		{"duplicate name", []Team{{Name: "A", Color: "#fff"}, {Name: "A", Color: "#000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.roster); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	roster := []Team{
		{Name: "Gryffindor", Color: "#ae0001", Emoji: "🦁"},
		{Name: "Slytherin", Color: "#2a623d", Emoji: "🐍"},
		{Name: "Ravenclaw", Color: "#222f5b", Emoji: "🦅"},
		{Name: "Hufflepuff", Color: "#ecb939", Emoji: "🦡"},
	}

	cfg, err := New(roster)
	if err != nil {
		t.Fatal(err)
	}

	names := cfg.Names()
	for i, team := range roster {
		if names[i] != team.Name {
			t.Errorf("position %d: expected %q, got %q", i, team.Name, names[i])
		}
		if cfg.At(i).Name != team.Name {
			t.Errorf("At(%d): expected %q, got %q", i, team.Name, cfg.At(i).Name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	content := `[
		{"name": "Red", "color": "#f00"},
		{"name": "Blue", "color": "#00f", "emoji": "🔵"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Len() != 2 {
		t.Fatalf("expected 2 teams, got %d", cfg.Len())
	}

	blue, ok := cfg.ByName("Blue")
	if !ok {
		t.Fatal("Blue not found")
	}
	if blue.Emoji != "🔵" {
		t.Errorf("expected Blue emoji to survive load, got %q", blue.Emoji)
	}

	if _, ok := cfg.ByName("Green"); ok {
		t.Error("ByName should miss unconfigured teams")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
