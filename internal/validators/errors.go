// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidLogin    = errors.New("login must be 3 to 64 characters")
	ErrInvalidPassword = errors.New("password must be 8 to 128 characters")

	ErrInvalidEntryID        = errors.New("invalid id")
	ErrEmptyName             = errors.New("name is required")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrEmptySecret           = errors.New("password is required")
	ErrMasterPasswordMissing = errors.New("master password is required")
	ErrInvalidSecretField    = errors.New("field must be one of: password, notes")
	ErrConflictingNotes      = errors.New("notes and clear_notes cannot be combined")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
)
