// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// KeyDerivation derives a per-user key from a master password and salt.
type KeyDerivation interface {
	Derive(ctx context.Context, password, saltEncoded string) (Key, error)
}

// SecretCipher encrypts and decrypts single values under a caller-supplied
// key.
type SecretCipher interface {
	Encrypt(key Key, plaintext string) (models.CipherField, error)
	Decrypt(key Key, field models.CipherField) (string, error)
}

// ServerCipher encrypts and decrypts single values under the deployment key.
type ServerCipher interface {
	Encrypt(plaintext string) (models.CipherField, error)
	Decrypt(field models.CipherField) (string, error)
}

var (
	_ KeyDerivation = (*KeyDeriver)(nil)
	_ SecretCipher  = (*FieldCipher)(nil)
	_ ServerCipher  = (*ServerSecretCipher)(nil)
)
