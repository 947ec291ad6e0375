package service

import (
	"errors"

	"github.com/MKhiriev/go-client-panel/internal/validators"
)

var (
	// ErrValidation marks malformed operator input or import files. Nothing
	// is changed when it is returned.
	ErrValidation = errors.New("validation error")

	ErrClientNotFound = errors.New("client not found")

	ErrWrongPassword        = errors.New("senha local incorreta")
	ErrWrongCurrentPassword = errors.New("a senha atual está incorreta")
	ErrWrongSyncPassword    = errors.New("senha de sincronização incorreta")
	ErrWrongSyncCredentials = errors.New("ID de sincronização ou senha incorretos")
	ErrWrongRecoveryKey     = errors.New("chave de recuperação incorreta")
	ErrNoRecoveryKey        = errors.New("nenhuma chave de recuperação configurada")
	ErrEmptyPassword        = errors.New("a nova senha não pode ser vazia")

	ErrNotLoggedIn        = errors.New("operator is not logged in")
	ErrSyncNotAvailable   = errors.New("sincronização na nuvem indisponível")
	ErrNoSessionSnapshot  = errors.New("no session snapshot to restore")
	ErrBackupNotFound     = errors.New("backup diário não encontrado")
	ErrInvalidBackupSlot  = errors.New("backup diário inválido")
	ErrEncryptionFailed   = errors.New("falha ao criptografar os dados")
	ErrSameRecoveryKey    = errors.New("a chave de recuperação inserida é a mesma que a atual")
	ErrSpreadsheetExport  = errors.New("spreadsheet export failed")
	ErrAssistantNoContent = errors.New("assistant returned no content")

	// Bin server errors.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidBinID          = validators.ErrInvalidBinID
	ErrEmptyBinData          = validators.ErrEmptyBinData
)
