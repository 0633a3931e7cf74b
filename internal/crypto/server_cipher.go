// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// ServerSecretCipher encrypts values the server must be able to recover
// without user interaction, such as generated mailbox passwords. Anyone
// holding both the deployment key and a database dump can decrypt them.
type ServerSecretCipher struct {
	key    Key
	fields *FieldCipher
}

// NewServerSecretCipher decodes cfg.ServerSecretKey once. A missing key or a
// key that does not decode to [KeySize] bytes is an [ErrInvalidKey] and must
// stop the process. A nil fields uses [NewFieldCipher].
func NewServerSecretCipher(cfg *config.Crypto, fields *FieldCipher) (*ServerSecretCipher, error) {
	if cfg == nil || strings.TrimSpace(cfg.ServerSecretKey) == "" {
		return nil, fmt.Errorf("%w: server secret key is not configured", ErrInvalidKey)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cfg.ServerSecretKey))
	if err != nil {
		return nil, fmt.Errorf("%w: server secret key is not valid base64", ErrInvalidKey)
	}
	if len(raw) != KeySize {
		clear(raw)
		return nil, fmt.Errorf("%w: server secret key must decode to %d bytes", ErrInvalidKey, KeySize)
	}

	if fields == nil {
		fields = NewFieldCipher()
	}

	return &ServerSecretCipher{key: raw, fields: fields}, nil
}

// Encrypt seals plaintext under the deployment key.
func (c *ServerSecretCipher) Encrypt(plaintext string) (models.CipherField, error) {
	return c.fields.Encrypt(c.key, plaintext)
}

// Decrypt opens field under the deployment key.
func (c *ServerSecretCipher) Decrypt(field models.CipherField) (string, error) {
	return c.fields.Decrypt(c.key, field)
}
