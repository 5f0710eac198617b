package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CanonicalJSON returns a canonical JSON encoding of v: object keys are
// sorted recursively at every nesting level, array order is preserved, and
// numbers keep their original literal form. Two values with semantically
// identical content always canonicalize to identical bytes regardless of
// the key order they were built or transmitted with.
func CanonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshaling value for canonicalization: %w", err)
	}

	// Round-trip through an untyped value: encoding/json marshals map keys
	// in sorted order, which yields the canonical form.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var decoded any
	if err = decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("error decoding value for canonicalization: %w", err)
	}

	canonical, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("error marshaling canonical value: %w", err)
	}

	return canonical, nil
}
