package client

import (
	"context"
	"fmt"
	"time"

	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/internal/tui"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/internal/workers"
)

// App wires client services, the background sync worker and the terminal
// UI into a single process lifecycle.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errNoServicesProvided
	}
	return &App{services: services, tui: ui, cfg: cfg, logger: logger}, nil
}

// Run resolves the local user identity from the configured auth token,
// launches the background sync job and blocks in the TUI until the user
// quits. The sync job is stopped before Run returns.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := utils.UserIDFromUnverifiedToken(a.cfg.Adapter.AuthToken)
	if err != nil {
		return fmt.Errorf("resolve user from auth token: %w", err)
	}

	background := workers.NewWorkers(&syncWorker{
		ctx:      ctx,
		job:      a.services.SyncJob,
		userID:   userID,
		interval: a.cfg.Sync.Interval,
	})
	background.Run()
	defer a.services.SyncJob.Stop()

	return a.tui.Run(ctx, userID)
}

// syncWorker adapts the periodic sync job to the workers.Worker contract.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}
