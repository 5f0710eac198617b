// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package config

// maxBatchSize is the server-side cap on entities per push request.
// A larger configured value would only produce rejected batches.
const maxBatchSize = 100

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; server-side validation rules will be added
// as the application matures (e.g. requiring non-empty DSN, token sign key).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval == 0 || cfg.Sync.BatchSize < 1 || cfg.Sync.BatchSize > maxBatchSize {
		return ErrInvalidSyncConfigs
	}

	return nil
}
