// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the API.

Every response carries a "success" boolean; failures use ErrorResponse with
success false and a user-safe message. Storage detail never leaves the
server, it goes to the log instead.

AssignTeamRequest accepts the identity key under either "name" or
"fingerprint" so both deployment variants (typed names at a kiosk, silent
device fingerprints from the scan page) share one endpoint.
*/
package models
