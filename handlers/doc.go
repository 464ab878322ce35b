// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct built from its dependencies:

  - AssignHandler: team assignment and statistics
  - QRHandler: QR code generation for the scan flow
  - AdminHandler: read-only HTML listing of all assignments

# Assignment Flow

A visitor scans the projected QR code, lands on the assignment page, and
the page posts their name or device fingerprint:

	POST /api/assign-team  → AssignTeam (idempotent; isNewAssignment flags the first visit)
	GET /api/stats         → Stats (zero-filled per-team counts)
	GET /api/generate-qr   → GenerateQR (PNG data URI + target URL)

Error mapping: an empty identity key is 400, configuration drift
(assign.ErrUnknownTeam) and storage faults are 500 with a generic body;
detail goes to the log only.

# Admin

	GET /admin → Admin

Read-only per-team totals and the full assignment list, newest first.
No auth in front of it; deploy behind a reverse proxy or keep it private.
*/
package handlers
