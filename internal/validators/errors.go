package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidBinID  = errors.New("invalid bin id")
	ErrEmptyBinData  = errors.New("bin data must be a non-empty string")
	ErrMissingFields = errors.New("campos obrigatórios ausentes")
)
