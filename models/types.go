package models

// Request types

// AssignTeamRequest carries the visitor's identity key. Deployments use
// either a user-typed name or a client-generated device fingerprint; the
// first non-empty field wins and both are treated as an opaque string.
type AssignTeamRequest struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
}

// Response types

type AssignTeamResponse struct {
	Success         bool   `json:"success"`
	Identity        string `json:"identity"`
	Team            string `json:"team"`
	Color           string `json:"color"`
	Emoji           string `json:"emoji,omitempty"`
	IsNewAssignment bool   `json:"isNewAssignment"`
}

type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   map[string]int `json:"stats"`
}

type GenerateQRResponse struct {
	Success bool   `json:"success"`
	QRCode  string `json:"qrCode"`
	URL     string `json:"url"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
