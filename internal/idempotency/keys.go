// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

// Package idempotency derives request keys that make retried pushes safe.
//
// A deterministic key is a pure function of the device identity, HTTP
// method, URL, and the canonical form of the payload: replaying the same
// logical request always reuses the same key, so the server can recognize
// and deduplicate at-least-once deliveries. Unique keys add a timestamp
// component for operations that must never collide even with identical
// content.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akulikov/scoresync/internal/utils"
)

// KeyLength bounds the generated key so it fits fixed-width header and
// storage slots. 16 bytes of SHA-256 are plenty for collision resistance
// at batch cardinality.
const KeyLength = 40

// DeviceIdentity supplies the stable installation id a key is scoped to.
// Satisfied by *device.Provider.
type DeviceIdentity interface {
	DeviceID() (string, error)
}

// Generator builds idempotency keys for one installation.
type Generator struct {
	device DeviceIdentity

	// now is swappable for tests.
	now func() time.Time
}

// NewGenerator constructs a Generator bound to the given device identity.
func NewGenerator(dev DeviceIdentity) *Generator {
	return &Generator{device: dev, now: time.Now}
}

// DeterministicKey derives a key from (device, method, url, payload).
// The payload is canonicalized first — object keys sorted recursively,
// array order preserved — so semantically identical payloads always yield
// the same key regardless of field ordering. Same inputs, same key, always.
func (g *Generator) DeterministicKey(method, url string, payload any) (string, error) {
	deviceID, err := g.device.DeviceID()
	if err != nil {
		return "", fmt.Errorf("resolving device id for idempotency key: %w", err)
	}

	canonical, err := utils.CanonicalJSON(payload)
	if err != nil {
		return "", fmt.Errorf("canonicalizing payload for idempotency key: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(deviceID))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToUpper(method)))
	h.Write([]byte{0})
	h.Write([]byte(url))
	h.Write([]byte{0})
	h.Write(canonical)

	return truncate(hex.EncodeToString(h.Sum(nil))), nil
}

// UniqueKey derives a key the same way as DeterministicKey but mixes in
// the current time in nanoseconds, for operations where retries must NOT
// be deduplicated (each attempt is its own logical request).
func (g *Generator) UniqueKey(method, url string, payload any) (string, error) {
	deviceID, err := g.device.DeviceID()
	if err != nil {
		return "", fmt.Errorf("resolving device id for idempotency key: %w", err)
	}

	canonical, err := utils.CanonicalJSON(payload)
	if err != nil {
		return "", fmt.Errorf("canonicalizing payload for idempotency key: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(deviceID))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToUpper(method)))
	h.Write([]byte{0})
	h.Write([]byte(url))
	h.Write([]byte{0})
	h.Write(canonical)
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(g.now().UnixNano(), 10)))

	return truncate(hex.EncodeToString(h.Sum(nil))), nil
}

func truncate(key string) string {
	if len(key) > KeyLength {
		return key[:KeyLength]
	}
	return key
}
