package store

import (
	"fmt"

	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalStorage]; additional repositories can be added here as the feature
// set grows.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed store for journal entities, the
	// pending operation queue and the sync checkpoint on this device.
	LocalStorage LocalStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens (creating if needed) the SQLite database
// at cfg.DBPath and bootstraps the local schema.
//
// Returns an error if the database cannot be opened or the schema cannot be
// created.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	local, err := NewLocalStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		LocalStorage: local,
	}, nil
}
