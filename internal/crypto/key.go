// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// SaltSize is the length of a generated per-user salt in bytes.
	SaltSize = 16
	// MinSaltSize is the shortest decoded salt Derive accepts.
	MinSaltSize = 8
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// Key is a symmetric key held only for the duration of one operation.
type Key []byte

// Destroy overwrites the key material with zeroes. It is safe to call on a
// nil key and more than once.
func (k Key) Destroy() {
	clear(k)
}

// String hides the key material from fmt verbs and structured loggers.
func (k Key) String() string {
	return "[REDACTED]"
}

// GoString hides the key material from %#v.
func (k Key) GoString() string {
	return "crypto.Key([REDACTED])"
}

// GenerateSalt returns SaltSize random bytes encoded with standard base64.
// A user's salt is generated once at registration and never changes.
func GenerateSalt() (string, error) {
	return randomBase64(SaltSize)
}

// GenerateServerKey returns a fresh base64-encoded key suitable for
// CRYPTO_SERVER_SECRET_KEY.
func GenerateServerKey() (string, error) {
	return randomBase64(KeySize)
}

func randomBase64(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
