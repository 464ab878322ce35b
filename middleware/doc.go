// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler with start/completion log lines, tagging both
with a per-request UUID:

	mux.HandleFunc("GET /api/stats", middleware.WithLogging(h.Stats))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse always produces the {"success": false, "error": ...} shape.

# CORS

CORS wraps the whole mux so the scan pages can be hosted separately from
the API during development.
*/
package middleware
