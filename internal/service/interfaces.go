package service

import (
	"context"

	"github.com/akulikov/scoresync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncResolverService is the server-side sync protocol: it resolves pushed
// batches against the durable store and serves changed-since pages for
// pulls.
type SyncResolverService interface {
	// Push validates the batch envelope, then applies each entity through
	// the checksummed conditional upsert. Rejected entities become
	// per-type error items; the rest of the batch proceeds. The whole
	// batch fails only on a malformed envelope or a transient storage
	// failure, in which case the client is expected to replay it under
	// the same idempotency key.
	Push(ctx context.Context, userID int64, req models.PushRequest) (models.PushResponse, error)

	// Pull returns one page of the user's entities changed at or after
	// req.Since, resuming after the row named by req.Token. The response
	// token is non-empty while more pages may follow.
	Pull(ctx context.Context, userID int64, req models.PullRequest) (models.PullResponse, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version string.
	GetAppVersion(ctx context.Context) string
}
