// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

// Package app contains shared application-layer constants used across the
// ScoreSync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID was given"

	// MsgInvalidJSONProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidJSONProvided = "Invalid JSON was passed"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"
)
