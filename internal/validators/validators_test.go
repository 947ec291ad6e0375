// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/models"
)

// ---------------------------------------------------------------------------
// BinValidator
// ---------------------------------------------------------------------------

func TestBinValidator_Validate(t *testing.T) {
	v := NewBinValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid", obj: models.BinRecord{ID: "lr5x9k2abcdefghij", Data: "blob"}},
		{name: "valid pointer", obj: &models.BinRecord{ID: "lr5x9k2abcdefghij", Data: "blob"}},
		{name: "short id", obj: models.BinRecord{ID: "abc", Data: "blob"}, wantErr: ErrInvalidBinID},
		{name: "upper case id", obj: models.BinRecord{ID: "LR5X9K2ABCDEFGHIJ", Data: "blob"}, wantErr: ErrInvalidBinID},
		{name: "empty data", obj: models.BinRecord{ID: "lr5x9k2abcdefghij"}, wantErr: ErrEmptyBinData},
		// для GET проверяется только идентификатор
		{name: "id only", obj: models.BinRecord{ID: "lr5x9k2abcdefghij"}, fields: []string{FieldBinID}},
		{name: "unknown field", obj: models.BinRecord{}, fields: []string{"size"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "bin", wantErr: ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// ClientValidator
// ---------------------------------------------------------------------------

func TestClientValidator_Validate(t *testing.T) {
	v := NewClientValidator()
	ctx := context.Background()
	due := models.MustParseDate("2024-01-10")

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
		wantMsg string
	}{
		{name: "valid", obj: models.ClientInput{Nome: "Ana", Login: "ana", Servidor: "A", Vencimento: due}},
		{name: "valid client", obj: models.Client{ID: "1", Nome: "Ana", Login: "ana", Servidor: "A", Vencimento: due}},
		{
			name:    "all missing",
			obj:     &models.ClientInput{Nome: "  "},
			wantErr: ErrMissingFields,
			wantMsg: "campos obrigatórios ausentes: nome, login, servidor, vencimento",
		},
		{
			name:    "only login checked",
			obj:     models.ClientInput{},
			fields:  []string{FieldLogin},
			wantErr: ErrMissingFields,
			wantMsg: "campos obrigatórios ausentes: login",
		},
		{name: "unknown field", obj: models.ClientInput{}, fields: []string{"senha"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}
