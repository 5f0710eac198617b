package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidLocalID    = errors.New("invalid local id")
	ErrInvalidEntityType = errors.New("unknown entity type")
	ErrInvalidChecksum   = errors.New("invalid checksum")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrMalformedPayload  = errors.New("malformed payload")
	ErrEmptyChanges      = errors.New("changes cannot be empty")
	ErrBatchTooLarge     = errors.New("batch exceeds maximum size")
	ErrInvalidLimit      = errors.New("invalid page limit")
	ErrInvalidDuration   = errors.New("practice duration must be positive")
	ErrInvalidTempo      = errors.New("tempo cannot be negative")
	ErrMissingPracticed  = errors.New("practiced_at is required")
	ErrEmptyDescription  = errors.New("goal description is required")
	ErrEmptyTitle        = errors.New("piece title is required")
)

// codes maps validation sentinels to stable machine-readable reason codes
// reported in per-entity push errors. Clients key on the code, never on the
// message text.
var codes = map[error]string{
	ErrInvalidUserID:     "invalid_user_id",
	ErrInvalidLocalID:    "invalid_local_id",
	ErrInvalidEntityType: "invalid_entity_type",
	ErrInvalidChecksum:   "invalid_checksum",
	ErrEmptyPayload:      "empty_payload",
	ErrMalformedPayload:  "malformed_payload",
	ErrEmptyChanges:      "empty_changes",
	ErrBatchTooLarge:     "batch_too_large",
	ErrInvalidLimit:      "invalid_limit",
	ErrInvalidDuration:   "invalid_duration",
	ErrInvalidTempo:      "invalid_tempo",
	ErrMissingPracticed:  "missing_practiced_at",
	ErrEmptyDescription:  "empty_description",
	ErrEmptyTitle:        "empty_title",
}

// Code returns the stable reason code for a validation error, matching
// wrapped sentinels via errors.Is. Unrecognised errors report
// "invalid_entity".
func Code(err error) string {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "invalid_entity"
}
