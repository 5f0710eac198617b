package models

import "time"

// DeviceRecord identifies one client installation. The id is generated once
// and reused for the lifetime of the installation; it feeds idempotency key
// derivation and shows up in diagnostics, nothing else depends on it.
type DeviceRecord struct {
	// ID is the stable installation identifier. Durable ids carry the
	// "dev-" prefix; session-scoped fallback ids carry "ses-" so callers
	// can tell the durability guarantee apart.
	ID string `json:"id"`

	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt is refreshed every time the identity is read.
	LastUsedAt time.Time `json:"last_used_at"`

	// Platform and AppVersion are descriptive metadata for diagnostics.
	// They are never authoritative.
	Platform   string `json:"platform,omitempty"`
	AppVersion string `json:"app_version,omitempty"`
}
