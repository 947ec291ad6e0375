package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/models"
)

// NewBinClient picks the bin backend from cfg: the bin server when an HTTP
// address is set, otherwise an S3 bucket when one is named, otherwise the
// disabled client.
func NewBinClient(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (BinClient, error) {
	switch {
	case cfg.HTTPAddress != "":
		logger.Info().Str("func", "NewBinClient").Str("backend", "http").Str("address", cfg.HTTPAddress).Msg("remote sync enabled")
		return NewHTTPBinClient(cfg, logger)
	case cfg.S3.Bucket != "":
		logger.Info().Str("func", "NewBinClient").Str("backend", "s3").Str("bucket", cfg.S3.Bucket).Msg("remote sync enabled")
		return NewS3BinClient(ctx, cfg, logger)
	default:
		logger.Info().Str("func", "NewBinClient").Msg("no remote backend configured, cloud sync unavailable")
		return NewDisabledBinClient(), nil
	}
}

func marshalBin(blob string) ([]byte, error) {
	body, err := json.Marshal(models.Bin{Data: blob})
	if err != nil {
		return nil, fmt.Errorf("marshal bin: %w", err)
	}
	return body, nil
}
