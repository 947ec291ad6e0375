package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/models"
)

type binService struct {
	binRepository store.BinRepository

	logger *logger.Logger
}

// NewBinService returns a [BinService] over binRepository. It does not
// validate its input; wrap it with [NewBinValidationService] for that.
func NewBinService(binRepository store.BinRepository, logger *logger.Logger) BinService {
	return &binService{
		binRepository: binRepository,
		logger:        logger,
	}
}

func (b *binService) CreateBin(ctx context.Context, id string, bin models.Bin) error {
	if err := b.binRepository.Create(ctx, models.BinRecord{ID: id, Data: bin.Data}); err != nil {
		return fmt.Errorf("create bin: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("bin_id", id).Int("size", len(bin.Data)).Msg("bin created")
	return nil
}

func (b *binService) GetBin(ctx context.Context, id string) (models.Bin, error) {
	record, err := b.binRepository.Get(ctx, id)
	if err != nil {
		return models.Bin{}, fmt.Errorf("get bin: %w", err)
	}
	return models.Bin{Data: record.Data}, nil
}

func (b *binService) PutBin(ctx context.Context, id string, bin models.Bin) error {
	if err := b.binRepository.Upsert(ctx, models.BinRecord{ID: id, Data: bin.Data}); err != nil {
		return fmt.Errorf("put bin: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("bin_id", id).Int("size", len(bin.Data)).Msg("bin overwritten")
	return nil
}
