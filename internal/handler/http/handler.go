package http

import (
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/service"
)

type Handler struct {
	services *service.Services

	// appCfg carries the JWT verification parameters used by the auth
	// middleware. Tokens are issued out of band.
	appCfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		appCfg:   appCfg,
		logger:   logger,
	}
}
