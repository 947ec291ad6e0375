// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-based envelope that protects roster
// snapshots before they leave the device.
package crypto

import "encoding/json"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_mock.go -package=mock

// Envelope encrypts arbitrary JSON documents under a password.
//
// Layout of an envelope before base64 encoding:
//
//	salt (16 bytes) || iv (12 bytes) || AES-256-GCM ciphertext+tag
//
// The key is derived with PBKDF2-HMAC-SHA256 from the password and the salt.
type Envelope interface {
	// Encrypt serializes doc to JSON and seals it with a key derived from
	// password. Every call uses a fresh salt and IV, so identical inputs give
	// different envelopes.
	Encrypt(doc any, password string) (string, error)

	// Decrypt opens blob with password and returns the JSON plaintext.
	// ok is false when the password is wrong or the blob is corrupted; the
	// two causes are indistinguishable.
	Decrypt(blob, password string) (plaintext json.RawMessage, ok bool)

	// DecryptInto is Decrypt followed by json.Unmarshal into target. It
	// returns false if either step fails.
	DecryptInto(blob, password string, target any) bool
}
