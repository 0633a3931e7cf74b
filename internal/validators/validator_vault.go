// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	FieldEntryID        = "id"
	FieldName           = "name"
	FieldUsername       = "username"
	FieldURL            = "url"
	FieldCategory       = "category"
	FieldSecrets        = "secrets"
	FieldMasterPassword = "master_password"
	FieldSecretField    = "field"
)

const (
	maxNameLen     = 256
	maxUsernameLen = 256
	maxURLLen      = 2048
	maxPasswordLen = 4096
	maxNotesLen    = 64 * 1024
)

type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEntryRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateEntryRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateEntryRequest:
		return v.validateUpdate(*value, fields...)

	case models.RevealRequest:
		return v.validateReveal(value, fields...)
	case *models.RevealRequest:
		return v.validateReveal(*value, fields...)

	case string:
		return validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCreate(req models.CreateEntryRequest, fields ...string) error {
	if shouldValidate(fields, FieldName) {
		if strings.TrimSpace(req.Name) == "" {
			return ErrEmptyName
		}
		if err := checkLen(FieldName, req.Name, maxNameLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldUsername) {
		if err := checkLen(FieldUsername, req.Username, maxUsernameLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldURL) {
		if err := checkLen(FieldURL, req.URL, maxURLLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldCategory) && req.Category != "" && !isValidCategory(req.Category) {
		return ErrInvalidCategory
	}

	if shouldValidate(fields, FieldSecrets) {
		if req.Password == "" {
			return ErrEmptySecret
		}
		if err := checkLen(FieldPassword, req.Password, maxPasswordLen); err != nil {
			return err
		}
		if req.Notes != nil {
			if err := checkLen("notes", *req.Notes, maxNotesLen); err != nil {
				return err
			}
		}
	}

	if shouldValidate(fields, FieldMasterPassword) && req.MasterPassword == "" {
		return ErrMasterPasswordMissing
	}

	return nil
}

func (v *VaultValidator) validateUpdate(req models.UpdateEntryRequest, fields ...string) error {
	if shouldValidate(fields, FieldEntryID) {
		if err := validateID(req.EntryID); err != nil {
			return err
		}
	}

	if req.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if shouldValidate(fields, FieldName) && req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return ErrEmptyName
		}
		if err := checkLen(FieldName, *req.Name, maxNameLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldUsername) && req.Username != nil {
		if err := checkLen(FieldUsername, *req.Username, maxUsernameLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldURL) && req.URL != nil {
		if err := checkLen(FieldURL, *req.URL, maxURLLen); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldCategory) && req.Category != nil && !isValidCategory(*req.Category) {
		return ErrInvalidCategory
	}

	if shouldValidate(fields, FieldSecrets) {
		if req.Password != nil {
			if *req.Password == "" {
				return ErrEmptySecret
			}
			if err := checkLen(FieldPassword, *req.Password, maxPasswordLen); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			if req.ClearNotes {
				return ErrConflictingNotes
			}
			if err := checkLen("notes", *req.Notes, maxNotesLen); err != nil {
				return err
			}
		}
	}

	if shouldValidate(fields, FieldMasterPassword) && req.ChangesSecrets() && req.MasterPassword == "" {
		return ErrMasterPasswordMissing
	}

	return nil
}

func (v *VaultValidator) validateReveal(req models.RevealRequest, fields ...string) error {
	if shouldValidate(fields, FieldEntryID) {
		if err := validateID(req.EntryID); err != nil {
			return err
		}
	}

	if shouldValidate(fields, FieldSecretField) && !req.Field.Valid() {
		return ErrInvalidSecretField
	}

	if shouldValidate(fields, FieldMasterPassword) && req.MasterPassword == "" {
		return ErrMasterPasswordMissing
	}

	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidEntryID
	}
	return nil
}

func isValidCategory(c models.Category) bool {
	return slices.Contains(models.Categories, c)
}

func checkLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s (max %d)", ErrFieldTooLong, field, limit)
	}
	return nil
}
