// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/store"
	"github.com/danielhkuo/sorting-hat/teams"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir with
// the full schema. The file (and WAL sidecars) go away with the temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", store.DSN(path))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := store.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabasePath: "test.db",
		BaseURL:      "http://localhost:3000",
		StaticDir:    "./static",
	}
}

// GetTestTeams returns a fixed two-team roster for deterministic assertions
func GetTestTeams(t *testing.T) teams.Config {
	t.Helper()

	cfg, err := teams.New([]teams.Team{
		{Name: "Red", Color: "#f00", Emoji: "🔴"},
		{Name: "Blue", Color: "#00f", Emoji: "🔵"},
	})
	if err != nil {
		t.Fatalf("Failed to build test teams: %v", err)
	}
	return cfg
}

// SeedAssignment inserts an assignment row directly, bypassing the service
func SeedAssignment(t *testing.T, db *sql.DB, identityKey, team string) int64 {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO assignment (identity_key, team, created_at)
		VALUES (?, ?, ?)
	`, identityKey, team, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to seed assignment: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read seeded assignment id: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
