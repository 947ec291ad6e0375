package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-client-panel/models"
)

const (
	FieldNome       = "nome"
	FieldLogin      = "login"
	FieldServidor   = "servidor"
	FieldVencimento = "vencimento"
)

// ClientValidator checks the operator-editable fields of a client. Unlike
// [BinValidator] it reports every missing field at once, in field order.
type ClientValidator struct{}

func NewClientValidator() Validator {
	return &ClientValidator{}
}

func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientInput:
		return v.validateClientInput(ctx, value, fields...)
	case *models.ClientInput:
		return v.validateClientInput(ctx, *value, fields...)
	case models.Client:
		return v.validateClientInput(ctx, inputOf(value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClientInput(_ context.Context, in models.ClientInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNome, FieldLogin, FieldServidor, FieldVencimento}
	}

	var missing []string
	for _, f := range fields {
		var empty bool
		switch f {
		case FieldNome:
			empty = strings.TrimSpace(in.Nome) == ""
		case FieldLogin:
			empty = strings.TrimSpace(in.Login) == ""
		case FieldServidor:
			empty = strings.TrimSpace(in.Servidor) == ""
		case FieldVencimento:
			empty = in.Vencimento.IsZero()
		default:
			return ErrUnknownField
		}
		if empty {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

func inputOf(c models.Client) models.ClientInput {
	return models.ClientInput{
		Nome:       c.Nome,
		Login:      c.Login,
		Senha:      c.Senha,
		Servidor:   c.Servidor,
		Vencimento: c.Vencimento,
		Telefone:   c.Telefone,
	}
}
