// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid login or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrWrongMasterPassword is returned for every authentication failure
	// while decrypting a vault field. A wrong master password and a
	// tampered ciphertext deliberately produce the same error.
	ErrWrongMasterPassword = errors.New("incorrect master password or data corrupted")

	ErrMasterPasswordRequired = errors.New("master password is required")
	ErrEncryptionSaltMissing  = errors.New("encryption salt is missing for user")
	ErrKeyUnavailable         = errors.New("vault key could not be derived")
	ErrCorruptedSecret        = errors.New("stored secret is corrupted")
	ErrSecretEncryption       = errors.New("secret could not be encrypted")
	ErrFieldNotSet            = errors.New("field is not set")
)
