// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyDerivation reports an empty password, an empty or undecodable
	// salt, or a failed derivation.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKey reports a key of the wrong length reaching a cipher.
	// It always points to a programming or configuration fault.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedCiphertext reports a stored triple whose components cannot
	// be decoded or have the wrong length.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecryptionFailed reports an authentication failure. A wrong key, a
	// tampered nonce, ciphertext or tag all produce this same error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed reports that no nonce could be generated.
	ErrEncryptionFailed = errors.New("encryption failed")
)
