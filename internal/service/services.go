package service

import (
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/store"
)

type Services struct {
	SyncResolverService SyncResolverService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncResolverService: NewSyncResolverService(storages.EntityRepository, logger),
		AppInfoService:      appInfo,
	}, nil
}
