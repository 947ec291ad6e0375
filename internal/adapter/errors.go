package adapter

import "errors"

// Errors of the remote bin backends. Transport-specific failures are mapped
// onto these so the session layer can use [errors.Is] whatever the backend.
var (
	// ErrNotConfigured is returned by every call of a client built without
	// a backend.
	ErrNotConfigured = errors.New("remote sync is not configured")

	// ErrRemoteUnavailable covers transport failures, timeouts, rate limits
	// and 5xx answers.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrNotFound is returned when the bin id does not exist.
	ErrNotFound = errors.New("ID de Sincronização não encontrado")

	// ErrInvalidFormat is returned when a stored bin is not {"data": string}.
	ErrInvalidFormat = errors.New("Formato de dados inválido")

	// ErrConflict is returned when a create-if-absent write hits an existing
	// id.
	ErrConflict = errors.New("bin id already exists")

	// ErrBadRequest and ErrPayloadTooLarge are rejections of the request
	// itself; retrying the same call cannot succeed.
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
)
