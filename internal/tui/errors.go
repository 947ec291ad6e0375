// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/service"
)

// errorMessages is checked in order, so wrapping errors come before the
// errors they wrap.
var errorMessages = []struct {
	target error
	text   string
}{
	{service.ErrSyncNotAvailable, "Sincronização na nuvem indisponível: nenhum servidor configurado."},
	{service.ErrWrongPassword, "Senha incorreta."},
	{service.ErrWrongSyncPassword, "Senha de sincronização incorreta."},
	{service.ErrWrongCurrentPassword, "A senha atual está incorreta."},
	{service.ErrWrongSyncCredentials, "ID de Sincronização ou senha incorretos."},
	{service.ErrWrongRecoveryKey, "Chave de recuperação incorreta."},
	{service.ErrNoRecoveryKey, "Nenhuma chave de recuperação foi configurada."},
	{service.ErrEmptyPassword, "A nova senha não pode ser vazia."},
	{service.ErrSameRecoveryKey, "A chave de recuperação inserida é a mesma que a atual."},
	{service.ErrNoSessionSnapshot, "Não há estado de sessão para restaurar."},
	{service.ErrBackupNotFound, "Backup diário não encontrado."},
	{service.ErrInvalidBackupSlot, "Arquivo de backup diário inválido."},
	{service.ErrEncryptionFailed, "Falha ao criptografar os dados."},
	{service.ErrNotLoggedIn, "Faça login para continuar."},
	{service.ErrClientNotFound, "Cliente não encontrado."},
	{service.ErrSpreadsheetExport, "Falha ao exportar a planilha."},
	{service.ErrValidation, "Arquivo de dados inválido ou corrompido."},
	{adapter.ErrNotFound, "ID de Sincronização não encontrado."},
	{adapter.ErrInvalidFormat, "Formato de dados inválido."},
	{adapter.ErrNotConfigured, "Sincronização na nuvem indisponível: nenhum servidor configurado."},
	{adapter.ErrRemoteUnavailable, "Servidor de sincronização indisponível. Verifique sua conexão."},
	{adapter.ErrPayloadTooLarge, "Os dados excedem o limite do servidor de sincronização."},
}

// errorText turns a service error into the sentence shown to the operator.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.text
		}
	}
	return err.Error()
}
