package models

import "time"

// PullRequest asks the server for entities changed since the client's last
// sync checkpoint.
type PullRequest struct {
	// Since is the checkpoint timestamp of the last successful pull.
	// The zero value requests everything.
	Since time.Time `json:"since"`

	// Token is the opaque continuation token from a previous partial
	// response. Empty on the first page.
	Token string `json:"token,omitempty"`

	// Limit bounds the page size. The server clamps it to its own maximum.
	Limit int `json:"limit,omitempty"`
}
