package service

import (
	"github.com/akulikov/scoresync/internal/adapter"
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/store"
)

type ClientServices struct {
	JournalService ClientJournalService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, keys KeySource, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore, serverAdapter, keys, cfg, logger)

	return &ClientServices{
		JournalService: NewClientJournalService(localStore, logger),
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, logger),
	}
}
