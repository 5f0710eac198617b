package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/score"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/internal/validators"
	"github.com/akulikov/scoresync/models"
)

type clientJournalService struct {
	localStore store.LocalStorage
	validator  validators.Validator
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientJournalService constructs the local journal on top of the
// client store.
func NewClientJournalService(localStore store.LocalStorage, logger *logger.Logger) ClientJournalService {
	return &clientJournalService{
		localStore: localStore,
		validator:  validators.NewSyncEntityValidator(),
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// LogPractice implements [ClientJournalService].
func (s *clientJournalService) LogPractice(ctx context.Context, userID int64, localID string, entry models.PracticeEntry) (models.SyncEntity, error) {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.SyncEntity{}, err
	}

	return s.saveLocal(ctx, userID, models.EntityTypeEntry, localID, entry)
}

// SetGoal implements [ClientJournalService].
func (s *clientJournalService) SetGoal(ctx context.Context, userID int64, localID string, goal models.Goal) (models.SyncEntity, error) {
	if err := s.validator.Validate(ctx, goal); err != nil {
		return models.SyncEntity{}, err
	}

	return s.saveLocal(ctx, userID, models.EntityTypeGoal, localID, goal)
}

// RegisterPiece implements [ClientJournalService].
//
// The canonical id doubles as the piece's local id, so the same work
// registered on two offline devices converges to one record instead of a
// create-create conflict.
func (s *clientJournalService) RegisterPiece(ctx context.Context, userID int64, title, composer string) (models.SyncEntity, []score.Match, error) {
	piece := models.PieceRef{
		Title:       title,
		Composer:    composer,
		CanonicalID: score.CanonicalID(title, composer),
	}
	if err := s.validator.Validate(ctx, piece); err != nil {
		return models.SyncEntity{}, nil, err
	}

	existing, err := s.localStore.ListByType(ctx, userID, models.EntityTypePiece)
	if err != nil {
		return models.SyncEntity{}, nil, fmt.Errorf("list registered pieces: %w", err)
	}

	for i := range existing {
		ref, decodeErr := decodePieceRef(existing[i].Payload)
		if decodeErr != nil {
			s.logger.Warn().Err(decodeErr).
				Str("localID", existing[i].LocalID).
				Msg("skipping corrupt piece record")
			continue
		}
		if score.IsSameScore(ref.CanonicalID, piece.CanonicalID) {
			return existing[i], nil, nil
		}
	}

	matches := similarPieces(title, composer, existing)

	entity, err := s.saveLocal(ctx, userID, models.EntityTypePiece, piece.CanonicalID, piece)
	if err != nil {
		return models.SyncEntity{}, nil, err
	}

	return entity, matches, nil
}

// FindSimilarPieces implements [ClientJournalService].
func (s *clientJournalService) FindSimilarPieces(ctx context.Context, userID int64, title, composer string) ([]score.Match, error) {
	existing, err := s.localStore.ListByType(ctx, userID, models.EntityTypePiece)
	if err != nil {
		return nil, fmt.Errorf("list registered pieces: %w", err)
	}

	return similarPieces(title, composer, existing), nil
}

// ListPieces implements [ClientJournalService].
func (s *clientJournalService) ListPieces(ctx context.Context, userID int64) ([]models.SyncEntity, error) {
	return s.localStore.ListByType(ctx, userID, models.EntityTypePiece)
}

// Delete implements [ClientJournalService]. The tombstone keeps the last
// payload so the server can still checksum the content, but sets the
// deletion marker that flows through the sync protocol.
func (s *clientJournalService) Delete(ctx context.Context, userID int64, entityType models.EntityType, localID string) error {
	entity, err := s.localStore.Get(ctx, userID, entityType, localID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entity.DeletedAt = &now

	checksum, err := utils.EntityChecksum(entity)
	if err != nil {
		return fmt.Errorf("checksum tombstone %s/%s: %w", entityType, localID, err)
	}
	entity.Checksum = checksum

	if err = s.localStore.SaveLocal(ctx, entity); err != nil {
		return fmt.Errorf("save tombstone %s/%s: %w", entityType, localID, err)
	}

	s.enqueue(ctx, models.OperationDelete, entity)
	return nil
}

// saveLocal serializes the payload, mints a local id when needed,
// checksums the content, and stores the entity as pending.
func (s *clientJournalService) saveLocal(ctx context.Context, userID int64, entityType models.EntityType, localID string, payload any) (models.SyncEntity, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("encode %s payload: %w", entityType, err)
	}

	kind := models.OperationUpdate
	if localID == "" {
		localID = s.ids.Generate()
	}
	if _, err = s.localStore.Get(ctx, userID, entityType, localID); errors.Is(err, store.ErrEntityNotFound) {
		kind = models.OperationCreate
	}

	entity := models.SyncEntity{
		UserID:     userID,
		EntityType: entityType,
		LocalID:    localID,
		Payload:    raw,
	}

	checksum, err := utils.EntityChecksum(entity)
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("checksum %s/%s: %w", entityType, localID, err)
	}
	entity.Checksum = checksum

	if err = s.validator.Validate(ctx, entity, validators.FieldLocalID, validators.FieldChecksum, validators.FieldPayload); err != nil {
		return models.SyncEntity{}, err
	}

	if err = s.localStore.SaveLocal(ctx, entity); err != nil {
		return models.SyncEntity{}, fmt.Errorf("save %s/%s: %w", entityType, localID, err)
	}

	s.enqueue(ctx, kind, entity)

	entity.SyncStatus = models.SyncStatusPending
	return entity, nil
}

// enqueue records the mutation in the retry queue. Queue bookkeeping never
// fails a journal write; the entity itself is already durable and pending.
func (s *clientJournalService) enqueue(ctx context.Context, kind models.OperationKind, entity models.SyncEntity) {
	op := models.SyncOperation{
		Kind:       kind,
		EntityType: entity.EntityType,
		LocalID:    entity.LocalID,
		Payload:    entity.Payload,
		Status:     models.OperationPending,
	}
	if _, err := s.localStore.EnqueueOperation(ctx, op); err != nil {
		s.logger.Error().Err(err).
			Str("entityType", string(entity.EntityType)).
			Str("localID", entity.LocalID).
			Msg("failed to enqueue sync operation")
	}
}

func similarPieces(title, composer string, entities []models.SyncEntity) []score.Match {
	candidates := make([]score.Candidate, 0, len(entities))
	for i := range entities {
		ref, err := decodePieceRef(entities[i].Payload)
		if err != nil {
			continue
		}
		candidates = append(candidates, score.Candidate{Title: ref.Title, Composer: ref.Composer})
	}

	return score.FindSimilarPieces(title, composer, candidates, score.DefaultThreshold)
}

func decodePieceRef(raw json.RawMessage) (models.PieceRef, error) {
	var ref models.PieceRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return models.PieceRef{}, fmt.Errorf("decode piece payload: %w", err)
	}
	return ref, nil
}
