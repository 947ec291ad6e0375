package http

import (
	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/service"
)

type Handler struct {
	services *service.Services
	limits   config.Server
	limiter  *ipRateLimiter
	metrics  *Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, limits config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limits:   limits,
		limiter:  newIPRateLimiter(limits.RateLimit, limits.RateBurst),
		metrics:  NewMetrics(),
		logger:   logger,
	}
}
