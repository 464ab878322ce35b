// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/sorting-hat/models"
	"github.com/danielhkuo/sorting-hat/testutil"
)

func TestRouter_Health(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestTeams(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("expected OK, got %q", w.Body.String())
	}
}

func TestRouter_AssignFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestTeams(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/assign-team",
		models.AssignTeamRequest{Name: "router-test"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AssignTeamResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.IsNewAssignment {
		t.Error("expected a fresh assignment through the router")
	}

	// Stats reflect it
	req = testutil.MakeRequest("GET", "/api/stats", nil, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.Stats[resp.Team] != 1 {
		t.Errorf("expected stats to count the assignment, got %v", stats.Stats)
	}
}

func TestRouter_MethodMatching(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestTeams(t), testutil.GetTestConfig())

	// GET on a POST-only route
	req := testutil.MakeRequest("GET", "/api/assign-team", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET /api/assign-team, got %d", w.Code)
	}
}

func TestRouter_QR(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestTeams(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/api/generate-qr", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.GenerateQRResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.HasPrefix(resp.QRCode, "data:image/png;base64,") {
		t.Error("expected a PNG data URI through the router")
	}
}

func TestRouter_Admin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestTeams(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/admin", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Team Assignments") {
		t.Error("expected the admin page title")
	}
}
