package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/internal/validators"
	"github.com/akulikov/scoresync/models"
)

const (
	// defaultPullLimit is used when the client does not bound the page.
	defaultPullLimit = 100

	// maxPullLimit caps the page size regardless of what the client asks
	// for.
	maxPullLimit = validators.MaxPullLimit
)

type syncResolverService struct {
	entities  store.EntityRepository
	validator validators.Validator

	logger *logger.Logger
	now    func() time.Time
}

// NewSyncResolverService constructs the server-side resolver on top of the
// entity repository.
func NewSyncResolverService(entities store.EntityRepository, logger *logger.Logger) SyncResolverService {
	return &syncResolverService{
		entities:  entities,
		validator: validators.NewSyncEntityValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// Push implements [SyncResolverService].
//
// The batch envelope is validated as a whole; a malformed envelope rejects
// the entire request with [ErrInvalidPushRequest]. Well-formed batches are
// then resolved entity by entity in the stable collection order: invalid
// entities turn into error items and the batch continues, while a transient
// storage failure aborts the round so the client can replay it under the
// same idempotency key. Replayed entities resolve as skipped.
func (s *syncResolverService) Push(ctx context.Context, userID int64, req models.PushRequest) (models.PushResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidPushRequest, err)
	}

	results := make(map[models.EntityType]models.PushResult, len(req.Changes))

	for _, entityType := range models.KnownEntityTypes {
		batch, ok := req.Changes[entityType]
		if !ok {
			continue
		}

		result := models.PushResult{}
		for i := range batch {
			if err := ctx.Err(); err != nil {
				return models.PushResponse{}, err
			}

			entity := batch[i]
			entity.UserID = userID
			entity.EntityType = entityType
			entity.SyncStatus = ""

			if err := s.validator.Validate(ctx, entity); err != nil {
				result.Processed++
				result.Errors = append(result.Errors, models.PushError{
					LocalID: entity.LocalID,
					Code:    validators.Code(err),
					Message: err.Error(),
				})
				continue
			}

			item, err := s.entities.Upsert(ctx, entity)
			if err != nil {
				if errors.Is(err, store.ErrTransientStorage) {
					return models.PushResponse{}, fmt.Errorf("upsert %s/%s: %w", entityType, entity.LocalID, err)
				}

				s.logger.Error().Err(err).
					Str("entityType", string(entityType)).
					Str("localID", entity.LocalID).
					Msg("upsert failed")
				result.Processed++
				result.Errors = append(result.Errors, models.PushError{
					LocalID: entity.LocalID,
					Code:    "storage_error",
					Message: "entity could not be stored",
				})
				continue
			}

			result.Processed++
			result.Items = append(result.Items, item)
			switch item.Outcome {
			case models.OutcomeInserted:
				result.Inserted++
			case models.OutcomeUpdated:
				result.Updated++
			case models.OutcomeSkipped:
				result.Skipped++
			}
		}

		results[entityType] = result
	}

	return models.PushResponse{Results: results}, nil
}

// Pull implements [SyncResolverService]. The continuation token is the row
// id of the last entity in the previous page; an unparsable token yields
// [ErrInvalidSyncToken]. A full page always carries a token — the client
// keeps paging until an empty one comes back.
func (s *syncResolverService) Pull(ctx context.Context, userID int64, req models.PullRequest) (models.PullResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: %w", ErrInvalidPullRequest, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPullLimit
	}
	if limit > maxPullLimit {
		limit = maxPullLimit
	}

	var afterID int64
	if req.Token != "" {
		parsed, err := strconv.ParseInt(req.Token, 10, 64)
		if err != nil {
			return models.PullResponse{}, fmt.Errorf("%w: %q", ErrInvalidSyncToken, req.Token)
		}
		afterID = parsed
	}

	entities, err := s.entities.GetChangedSince(ctx, userID, req.Since, afterID, limit)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("get changed entities: %w", err)
	}

	resp := models.PullResponse{
		Entities:   entities,
		ServerTime: s.now().UTC(),
		Length:     len(entities),
	}
	if len(entities) == limit {
		resp.Token = strconv.FormatInt(entities[len(entities)-1].ID, 10)
	}

	return resp, nil
}
