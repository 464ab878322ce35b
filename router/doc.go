// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ routing.

NewRouter wires the store, the assignment service, and the handlers:

	mux := router.NewRouter(db, roster, cfg)

# Routes

	GET  /health           → liveness probe
	POST /api/assign-team  → assign (or return) the caller's team
	GET  /api/stats        → per-team counts
	GET  /api/generate-qr  → QR code for the assignment page
	GET  /admin            → read-only HTML listing
	GET  /assign           → static assignment entry page
	GET  /                 → static dashboard (file server catch-all)

API routes are registered before the static file server so the catch-all
never shadows them.
*/
package router
