package models

// Every response carries the "ok" flag of the client wire protocol. Errors
// additionally carry a human-readable "error" string; the HTTP status code
// classifies them (400 validation, 401/403 auth, 404 not found, 409 conflict).

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// StatusResponse answers the shared-secret liveness probe.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// FetchAllResponse is the full store snapshot returned by GET /getAll.
// Tombstones are included; the client decides what to show and what to purge.
type FetchAllResponse struct {
	OK         bool       `json:"ok"`
	Notes      []Note     `json:"notes"`
	Categories []Category `json:"categories"`
}

// UpsertResponse is returned by the add/upsert operations. ID echoes the
// client-supplied id or carries the server-synthesized one.
type UpsertResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// DeleteResponse is returned by the delete operations.
//
// Deleted is "soft" or "permanent". Ignored is set (with Reason) when a
// permanent delete was suppressed as a replay of an already-recorded delete
// from the same session; that outcome is a success, not an error.
type DeleteResponse struct {
	OK      bool   `json:"ok"`
	Deleted string `json:"deleted,omitempty"`
	Ignored bool   `json:"ignored,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the plain success envelope of rename and bulk wipe.
type MessageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
