// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

// Package device manages the per-installation identity used for
// idempotency key derivation and diagnostics.
//
// The id is generated once, persisted next to the local database, and
// reused for the lifetime of the installation. When the durable slot is
// unavailable (read-only disk, sandboxed environment) the provider falls
// back to a session-scoped id with a distinct prefix so callers can tell
// the two durability guarantees apart.
package device

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"
)

const (
	// DurablePrefix marks ids that survive restarts.
	DurablePrefix = "dev-"

	// SessionPrefix marks fallback ids that live only as long as the
	// process.
	SessionPrefix = "ses-"
)

// ErrNotInitialized is returned when Current or Reset is called before
// Init.
var ErrNotInitialized = errors.New("device identity provider not initialized")

// Provider owns the installation identity. All methods are safe for
// concurrent use.
type Provider struct {
	path       string
	platform   string
	appVersion string
	ids        *utils.UUIDGenerator

	mu      sync.Mutex
	record  *models.DeviceRecord
	durable bool
}

// NewProvider constructs a Provider that persists the identity at path.
// An empty path forces the session-scoped fallback. Call Init before any
// other method.
func NewProvider(path, platform, appVersion string) *Provider {
	return &Provider{
		path:       path,
		platform:   platform,
		appVersion: appVersion,
		ids:        utils.NewUUIDGenerator(),
	}
}

// Init loads the persisted identity, creating and persisting a fresh one
// on first run. If the durable slot cannot be read or written the provider
// silently degrades to a session-scoped identity; Init fails only on a
// corrupt record it refuses to guess about.
func (p *Provider) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		p.record = p.freshRecord(SessionPrefix)
		p.durable = false
		return nil
	}

	data, err := os.ReadFile(p.path)
	switch {
	case err == nil:
		var rec models.DeviceRecord
		if err = json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("corrupt device record at %s: %w", p.path, err)
		}
		p.record = &rec
		p.durable = true
		return nil

	case errors.Is(err, os.ErrNotExist):
		rec := p.freshRecord(DurablePrefix)
		if persistErr := p.persist(rec); persistErr != nil {
			// Durable slot unavailable: degrade to a session id so the
			// caller can still sync, just without retry-safe key reuse
			// across restarts.
			p.record = p.freshRecord(SessionPrefix)
			p.durable = false
			return nil
		}
		p.record = rec
		p.durable = true
		return nil

	default:
		p.record = p.freshRecord(SessionPrefix)
		p.durable = false
		return nil
	}
}

// Current returns the installation identity, refreshing LastUsedAt. The
// refresh is persisted best-effort; a write failure never blocks the
// caller.
func (p *Provider) Current() (models.DeviceRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.record == nil {
		return models.DeviceRecord{}, ErrNotInitialized
	}

	p.record.LastUsedAt = time.Now().UTC()
	if p.durable {
		_ = p.persist(p.record)
	}

	return *p.record, nil
}

// DeviceID returns just the installation id, refreshing LastUsedAt.
// It satisfies the idempotency generator's DeviceIdentity interface.
func (p *Provider) DeviceID() (string, error) {
	rec, err := p.Current()
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Durable reports whether the current identity survives restarts.
func (p *Provider) Durable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.durable
}

// Reset discards the persisted identity and mints a new one. Used when an
// installation is intentionally detached from its sync history.
func (p *Provider) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.record == nil {
		return ErrNotInitialized
	}

	if p.durable {
		if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing device record: %w", err)
		}
	}

	rec := p.freshRecord(DurablePrefix)
	if p.path == "" {
		p.record = p.freshRecord(SessionPrefix)
		p.durable = false
		return nil
	}
	if err := p.persist(rec); err != nil {
		p.record = p.freshRecord(SessionPrefix)
		p.durable = false
		return nil
	}

	p.record = rec
	p.durable = true
	return nil
}

func (p *Provider) freshRecord(prefix string) *models.DeviceRecord {
	now := time.Now().UTC()
	return &models.DeviceRecord{
		ID:         prefix + p.ids.Generate(),
		CreatedAt:  now,
		LastUsedAt: now,
		Platform:   p.platform,
		AppVersion: p.appVersion,
	}
}

func (p *Provider) persist(rec *models.DeviceRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling device record: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating device record dir: %w", err)
		}
	}

	if err = os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("writing device record: %w", err)
	}

	return nil
}
