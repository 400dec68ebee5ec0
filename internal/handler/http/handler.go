package http

import (
	"github.com/papyrus-labs/papyrusdb/internal/config"
	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/service"
)

type Handler struct {
	services *service.Services

	serverKey string
	cors      bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		serverKey: cfg.App.ServerKey,
		cors:      cfg.Server.CORS,
		logger:    logger,
	}
}
