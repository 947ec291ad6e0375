// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the random PBKDF2 salt prefix.
	SaltSize = 16
	// IVSize is the length of the AES-GCM nonce following the salt.
	IVSize = 12
	// KeySize selects AES-256.
	KeySize = 32
	// MinIterations is the lowest PBKDF2 work factor the envelope accepts.
	MinIterations = 100_000
)

// envelope is the private implementation of [Envelope].
type envelope struct {
	iterations int
	random     io.Reader
}

// NewEnvelope constructs an [Envelope] running PBKDF2 with the given number
// of iterations. Values below [MinIterations] are raised to it.
func NewEnvelope(iterations int) Envelope {
	if iterations < MinIterations {
		iterations = MinIterations
	}
	return &envelope{iterations: iterations, random: rand.Reader}
}

func (e *envelope) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, e.iterations, KeySize, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt implements [Envelope].
func (e *envelope) Encrypt(doc any, password string) (string, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	// 2. Fresh salt and IV for every call
	header := make([]byte, SaltSize+IVSize)
	if _, err = io.ReadFull(e.random, header); err != nil {
		return "", fmt.Errorf("generate salt and iv: %w", err)
	}
	salt, iv := header[:SaltSize], header[SaltSize:]

	// 3. Derive key and seal
	gcm, err := newGCM(e.deriveKey(password, salt))
	if err != nil {
		return "", err
	}

	// 4. salt || iv || ciphertext
	blob := gcm.Seal(header, iv, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Envelope].
func (e *envelope) Decrypt(blob, password string) (json.RawMessage, bool) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, false
	}
	// an empty document still carries the 16-byte GCM tag
	if len(raw) < SaltSize+IVSize+16 {
		return nil, false
	}

	salt := raw[:SaltSize]
	iv := raw[SaltSize : SaltSize+IVSize]
	ciphertext := raw[SaltSize+IVSize:]

	gcm, err := newGCM(e.deriveKey(password, salt))
	if err != nil {
		return nil, false
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, false
	}
	if !json.Valid(plaintext) {
		return nil, false
	}

	return plaintext, true
}

// DecryptInto implements [Envelope].
func (e *envelope) DecryptInto(blob, password string, target any) bool {
	plaintext, ok := e.Decrypt(blob, password)
	if !ok {
		return false
	}
	return json.Unmarshal(plaintext, target) == nil
}
