// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sorting-hat/assign"
	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/middleware"
	"github.com/danielhkuo/sorting-hat/models"
)

type AssignHandler struct {
	svc *assign.Service
	cfg cliparse.Config
}

func NewAssignHandler(svc *assign.Service, cfg cliparse.Config) *AssignHandler {
	return &AssignHandler{svc: svc, cfg: cfg}
}

// AssignTeam handles POST /api/assign-team
// Returns the visitor's existing team, or assigns a random one first.
func (h *AssignHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	var req models.AssignTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Either field carries the opaque identity key
	identityKey := req.Name
	if identityKey == "" {
		identityKey = req.Fingerprint
	}

	result, err := h.svc.Assign(r.Context(), identityKey)
	if err != nil {
		switch {
		case errors.Is(err, assign.ErrEmptyKey):
			middleware.ErrorResponse(w, http.StatusBadRequest, "name or fingerprint is required")
		case errors.Is(err, assign.ErrUnknownTeam):
			slog.Error("stored team missing from roster", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Team configuration error")
		default:
			slog.Error("failed to assign team", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if result.IsNew {
		slog.Info("team assigned", "identity", result.IdentityKey, "team", result.Team)
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssignTeamResponse{
		Success:         true,
		Identity:        result.IdentityKey,
		Team:            result.Team,
		Color:           result.Color,
		Emoji:           result.Emoji,
		IsNewAssignment: result.IsNew,
	})
}

// Stats handles GET /api/stats
// Returns per-team assignment counts for every configured team.
func (h *AssignHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		Success: true,
		Stats:   stats,
	})
}
