package validators

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akulikov/scoresync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldLocalID targets the client-generated identifier of a sync entity.
	FieldLocalID = "local_id"

	// FieldUserID targets the owner identifier of an entity or request.
	FieldUserID = "user_id"

	// FieldEntityType targets the collection name of a sync entity.
	FieldEntityType = "entity_type"

	// FieldChecksum targets the content checksum of a sync entity.
	FieldChecksum = "checksum"

	// FieldPayload targets the JSON payload of a sync entity, including the
	// per-collection typed checks.
	FieldPayload = "payload"

	// FieldChanges targets the per-collection change map of a push request.
	FieldChanges = "changes"

	// FieldLimit targets the page limit of a pull request.
	FieldLimit = "limit"
)

const (
	// MaxBatchSize is the largest number of entities a single push request
	// may carry across all collections.
	MaxBatchSize = 100

	// MaxPullLimit is the largest page size a pull request may ask for.
	MaxPullLimit = 500

	// checksumHexLength is the length of a hex-encoded SHA-256 digest.
	checksumHexLength = 64
)

// SyncEntityValidator implements the Validator interface for all
// sync-related domain models: SyncEntity, PushRequest, PullRequest, and the
// typed payloads PracticeEntry, Goal, and PieceRef.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type SyncEntityValidator struct {
}

// NewSyncEntityValidator constructs a new SyncEntityValidator
// and returns it as the Validator interface.
func NewSyncEntityValidator() Validator {
	return &SyncEntityValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SyncEntity / *models.SyncEntity
//   - models.PushRequest / *models.PushRequest
//   - models.PullRequest / *models.PullRequest
//   - models.PracticeEntry / *models.PracticeEntry
//   - models.Goal / *models.Goal
//   - models.PieceRef / *models.PieceRef
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *SyncEntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncEntity:
		return v.validateSyncEntity(value, fields...)
	case *models.SyncEntity:
		return v.validateSyncEntity(*value, fields...)

	case models.PushRequest:
		return v.validatePushRequest(value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(*value, fields...)

	case models.PullRequest:
		return v.validatePullRequest(value, fields...)
	case *models.PullRequest:
		return v.validatePullRequest(*value, fields...)

	case models.PracticeEntry:
		return v.validatePracticeEntry(value)
	case *models.PracticeEntry:
		return v.validatePracticeEntry(*value)

	case models.Goal:
		return v.validateGoal(value)
	case *models.Goal:
		return v.validateGoal(*value)

	case models.PieceRef:
		return v.validatePieceRef(value)
	case *models.PieceRef:
		return v.validatePieceRef(*value)

	default:
		return ErrUnsupportedType
	}
}

// isKnownEntityType reports whether et is one of the collections the sync
// protocol carries.
func isKnownEntityType(et models.EntityType) bool {
	for _, t := range models.KnownEntityTypes {
		if et == t {
			return true
		}
	}
	return false
}

// isValidChecksum reports whether s looks like a hex-encoded SHA-256 digest.
func isValidChecksum(s string) bool {
	if len(s) != checksumHexLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// validateSyncEntity validates a single SyncEntity model.
//
// Default validated fields (when none specified):
// LocalID, UserID, EntityType, Checksum, Payload.
//
// Deleted entities are exempt from payload checks: a tombstone carries no
// content beyond the deletion flag.
//
// Returns the first encountered validation error or nil.
func (v *SyncEntityValidator) validateSyncEntity(entity models.SyncEntity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalID, FieldUserID, FieldEntityType, FieldChecksum, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalID:
			if entity.LocalID == "" {
				return ErrInvalidLocalID
			}
		case FieldUserID:
			if entity.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntityType:
			if !isKnownEntityType(entity.EntityType) {
				return ErrInvalidEntityType
			}
		case FieldChecksum:
			if !isValidChecksum(entity.Checksum) {
				return ErrInvalidChecksum
			}
		case FieldPayload:
			if entity.Deleted() {
				continue
			}
			if err := v.validatePayload(entity.EntityType, entity.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload unmarshals raw into the typed payload for the given
// collection and applies the per-type checks. An unknown entity type is
// reported as such rather than as a payload error.
func (v *SyncEntityValidator) validatePayload(entityType models.EntityType, raw json.RawMessage) error {
	if len(raw) == 0 {
		return ErrEmptyPayload
	}

	switch entityType {
	case models.EntityTypeEntry:
		var entry models.PracticeEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return v.validatePracticeEntry(entry)

	case models.EntityTypeGoal:
		var goal models.Goal
		if err := json.Unmarshal(raw, &goal); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return v.validateGoal(goal)

	case models.EntityTypePiece:
		var piece models.PieceRef
		if err := json.Unmarshal(raw, &piece); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return v.validatePieceRef(piece)

	default:
		return ErrInvalidEntityType
	}
}

// validatePushRequest validates a PushRequest, which carries a batch of
// changed entities grouped by collection.
//
// Default validated fields: Changes.
//
// When FieldChanges is validated, the request must be non-empty, must not
// exceed MaxBatchSize entities in total, must not name unknown collections,
// and every entity is individually checked with validateSyncEntity minus
// the user id (the server stamps it from the authenticated context).
//
// Returns a wrapped error indicating the collection and local id of the
// first invalid entity.
func (v *SyncEntityValidator) validatePushRequest(request models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if request.CountEntities() == 0 {
				return ErrEmptyChanges
			}
			if request.CountEntities() > MaxBatchSize {
				return ErrBatchTooLarge
			}
			for entityType, entities := range request.Changes {
				if !isKnownEntityType(entityType) {
					return fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
				}
				for _, entity := range entities {
					if err := v.validateSyncEntity(entity, FieldLocalID, FieldChecksum, FieldPayload); err != nil {
						return fmt.Errorf("%s/%s: %w", entityType, entity.LocalID, err)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePullRequest validates a PullRequest.
//
// Default validated fields: Limit. A zero limit means "use the server
// default" and is accepted; a negative or oversized limit is not.
func (v *SyncEntityValidator) validatePullRequest(request models.PullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if request.Limit < 0 || request.Limit > MaxPullLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePracticeEntry applies the practice-entry content rules: positive
// duration, non-negative tempo, and a recorded practice time.
func (v *SyncEntityValidator) validatePracticeEntry(entry models.PracticeEntry) error {
	if entry.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if entry.Tempo < 0 {
		return ErrInvalidTempo
	}
	if entry.PracticedAt.IsZero() {
		return ErrMissingPracticed
	}
	return nil
}

// validateGoal applies the goal content rules.
func (v *SyncEntityValidator) validateGoal(goal models.Goal) error {
	if strings.TrimSpace(goal.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// validatePieceRef applies the piece-reference content rules.
func (v *SyncEntityValidator) validatePieceRef(piece models.PieceRef) error {
	if strings.TrimSpace(piece.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
