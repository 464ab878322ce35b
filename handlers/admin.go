// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sorting-hat/assign"
	"github.com/danielhkuo/sorting-hat/middleware"
	"github.com/danielhkuo/sorting-hat/store"
	"github.com/danielhkuo/sorting-hat/teams"
)

type AdminHandler struct {
	st     *store.Store
	svc    *assign.Service
	roster teams.Config
	tmpl   *template.Template
}

func NewAdminHandler(st *store.Store, svc *assign.Service, roster teams.Config) *AdminHandler {
	return &AdminHandler{
		st:     st,
		svc:    svc,
		roster: roster,
		tmpl:   template.Must(template.New("admin").Parse(adminTemplate)),
	}
}

type teamTotal struct {
	Team  teams.Team
	Count int
}

type adminPage struct {
	Totals      []teamTotal
	Assignments []store.Assignment
	Total       int
}

// Admin handles GET /admin
// Renders a read-only listing of all assignments with per-team totals.
// There is deliberately no auth in front of this; keep it off the public
// internet or put it behind a reverse proxy.
func (h *AdminHandler) Admin(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	assignments, err := h.st.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list assignments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	page := adminPage{
		Assignments: assignments,
		Total:       len(assignments),
	}
	// Roster order keeps the totals stable across refreshes
	for _, name := range h.roster.Names() {
		team, _ := h.roster.ByName(name)
		page.Totals = append(page.Totals, teamTotal{Team: team, Count: stats[name]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, page); err != nil {
		slog.Error("failed to render admin page", "error", err)
	}
}

const adminTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Team Assignments</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.swatch { display: inline-block; width: 0.8rem; height: 0.8rem; border-radius: 50%; margin-right: 0.4rem; }
</style>
</head>
<body>
<h1>Team Assignments</h1>

<h2>Totals ({{.Total}} visitors)</h2>
<table>
<tr><th>Team</th><th>Count</th></tr>
{{range .Totals}}
<tr>
<td><span class="swatch" style="background: {{.Team.Color}}"></span>{{.Team.Emoji}} {{.Team.Name}}</td>
<td>{{.Count}}</td>
</tr>
{{end}}
</table>

<h2>Assignments (newest first)</h2>
<table>
<tr><th>#</th><th>Identity</th><th>Team</th><th>Assigned</th></tr>
{{range .Assignments}}
<tr>
<td>{{.ID}}</td>
<td>{{.IdentityKey}}</td>
<td>{{.Team}}</td>
<td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`
