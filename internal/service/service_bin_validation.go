package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/validators"
	"github.com/MKhiriev/go-client-panel/models"
)

// BinValidationService checks ids and documents before they reach the
// wrapped [BinService].
type BinValidationService struct {
	inner     BinService
	validator validators.Validator
}

// NewBinValidationService returns the validating decorator. Call Wrap to
// attach it to a service.
func NewBinValidationService() BinServiceWrapper {
	return &BinValidationService{validator: validators.NewBinValidator()}
}

// Wrap implements [BinServiceWrapper].
func (v *BinValidationService) Wrap(inner BinService) BinService {
	return &BinValidationService{inner: inner, validator: v.validator}
}

func (v *BinValidationService) CreateBin(ctx context.Context, id string, bin models.Bin) error {
	if err := v.validator.Validate(ctx, models.BinRecord{ID: id, Data: bin.Data}); err != nil {
		return fmt.Errorf("error during bin validation before saving: %w", err)
	}
	return v.inner.CreateBin(ctx, id, bin)
}

func (v *BinValidationService) GetBin(ctx context.Context, id string) (models.Bin, error) {
	if err := v.validator.Validate(ctx, models.BinRecord{ID: id}, validators.FieldBinID); err != nil {
		return models.Bin{}, err
	}
	return v.inner.GetBin(ctx, id)
}

func (v *BinValidationService) PutBin(ctx context.Context, id string, bin models.Bin) error {
	if err := v.validator.Validate(ctx, models.BinRecord{ID: id, Data: bin.Data}); err != nil {
		return fmt.Errorf("error during bin validation before saving: %w", err)
	}
	return v.inner.PutBin(ctx, id, bin)
}
