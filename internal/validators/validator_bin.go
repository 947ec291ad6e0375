package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

const (
	FieldBinID   = "bin_id"
	FieldBinData = "bin_data"
)

// BinValidator checks bin records before they reach the bin storage.
type BinValidator struct{}

func NewBinValidator() Validator {
	return &BinValidator{}
}

func (v *BinValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BinRecord:
		return v.validateBinRecord(ctx, value, fields...)
	case *models.BinRecord:
		return v.validateBinRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BinValidator) validateBinRecord(_ context.Context, bin models.BinRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBinID, FieldBinData}
	}

	for _, f := range fields {
		switch f {
		case FieldBinID:
			if !utils.IsValidBinID(bin.ID) {
				return fmt.Errorf("%w: %q", ErrInvalidBinID, bin.ID)
			}
		case FieldBinData:
			if bin.Data == "" {
				return ErrEmptyBinData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
