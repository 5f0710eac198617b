package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrInvalidPushRequest rejects a whole batch whose envelope is
	// malformed (empty, oversized, unknown collection). Individual bad
	// entities inside a well-formed batch never trigger it.
	ErrInvalidPushRequest = errors.New("invalid push request")

	// ErrInvalidPullRequest rejects a pull with an out-of-range limit.
	ErrInvalidPullRequest = errors.New("invalid pull request")

	// ErrInvalidSyncToken is returned when a continuation token cannot be
	// parsed. The client should restart the pull from its checkpoint
	// without a token.
	ErrInvalidSyncToken = errors.New("invalid sync continuation token")

	// ErrSyncAlreadyRunning is returned when FullSync is entered while a
	// previous cycle is still in flight. At most one cycle runs at a time.
	ErrSyncAlreadyRunning = errors.New("sync cycle already running")
)
