package store

import "github.com/akulikov/scoresync/internal/logger"

// Storages bundles the server-side repositories handed to the service layer.
type Storages struct {
	EntityRepository EntityRepository
	LegacyRepository LegacyRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		EntityRepository: NewEntityRepository(db, log),
		LegacyRepository: NewLegacyRepository(db, log),
	}
}
