// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// FieldCipher encrypts single string values with AES-256-GCM. Each call to
// Encrypt draws a fresh random nonce, so a triple is never reused.
// FieldCipher holds no key and is safe for concurrent use.
type FieldCipher struct {
	rand io.Reader
}

// NewFieldCipher returns a [FieldCipher] reading nonces from crypto/rand.
func NewFieldCipher() *FieldCipher {
	return &FieldCipher{rand: rand.Reader}
}

// Encrypt seals plaintext under key. An empty plaintext is valid and yields
// an empty ciphertext component.
func (c *FieldCipher) Encrypt(key Key, plaintext string) (models.CipherField, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.CipherField{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(c.rand, nonce); err != nil {
		return models.CipherField{}, fmt.Errorf("%w: nonce generation", ErrEncryptionFailed)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return models.CipherField{
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed[:split]),
		AuthTag:    base64.StdEncoding.EncodeToString(sealed[split:]),
	}, nil
}

// Decrypt verifies and opens field under key. No plaintext is returned
// unless the tag verifies.
func (c *FieldCipher) Decrypt(key Key, field models.CipherField) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce, err := decodeComponent("nonce", field.Nonce, NonceSize)
	if err != nil {
		return "", err
	}
	tag, err := decodeComponent("auth tag", field.AuthTag, TagSize)
	if err != nil {
		return "", err
	}
	ciphertext, err := decodeComponent("ciphertext", field.Ciphertext, -1)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrInvalidKey
	}

	return gcm, nil
}

// decodeComponent decodes one base64 component; size < 0 skips the length
// check.
func decodeComponent(name, encoded string, size int) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64", ErrMalformedCiphertext, name)
	}
	if size >= 0 && len(raw) != size {
		return nil, fmt.Errorf("%w: %s must be %d bytes, got %d", ErrMalformedCiphertext, name, size, len(raw))
	}
	return raw, nil
}
