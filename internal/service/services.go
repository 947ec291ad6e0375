package service

import (
	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
)

// Services bundles the bin server's services.
type Services struct {
	AppInfoService AppInfoService
	BinService     BinService
}

// NewServices wires the bin server's services over bins.
func NewServices(bins store.BinRepository, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		BinService:     NewBinValidationService().Wrap(NewBinService(bins, logger)),
	}, nil
}
