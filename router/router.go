// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"path/filepath"

	"github.com/danielhkuo/sorting-hat/assign"
	"github.com/danielhkuo/sorting-hat/cliparse"
	"github.com/danielhkuo/sorting-hat/handlers"
	"github.com/danielhkuo/sorting-hat/middleware"
	"github.com/danielhkuo/sorting-hat/store"
	"github.com/danielhkuo/sorting-hat/teams"
)

func NewRouter(db *sql.DB, roster teams.Config, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	st := store.New(db)
	svc := assign.NewService(st, roster)
	assignHandler := handlers.NewAssignHandler(svc, cfg)
	qrHandler := handlers.NewQRHandler(cfg)
	adminHandler := handlers.NewAdminHandler(st, svc, roster)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API (registered before the static catch-all)
	mux.HandleFunc("POST /api/assign-team", middleware.WithLogging(assignHandler.AssignTeam))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(assignHandler.Stats))
	mux.HandleFunc("GET /api/generate-qr", middleware.WithLogging(qrHandler.GenerateQR))

	// Admin listing (read-only, no auth; see handlers.AdminHandler)
	mux.HandleFunc("GET /admin", middleware.WithLogging(adminHandler.Admin))

	// Assignment entry page, the QR code's target
	mux.HandleFunc("GET /assign", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "assign.html"))
	})

	// Dashboard and the rest of the static assets
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))

	return mux
}
