// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/validators"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// VaultValidationService validates vault requests before handing them to
// the wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.VaultEntry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VaultEntry{}, validationError(err)
	}

	return v.inner.CreateEntry(ctx, userID, req)
}

func (v *VaultValidationService) ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error) {
	return v.inner.ListEntries(ctx, userID)
}

func (v *VaultValidationService) GetEntry(ctx context.Context, userID int64, entryID string) (models.VaultEntry, error) {
	if err := v.validator.Validate(ctx, entryID); err != nil {
		return models.VaultEntry{}, validationError(err)
	}

	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *VaultValidationService) UpdateEntry(ctx context.Context, userID int64, req models.UpdateEntryRequest) (models.VaultEntry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.VaultEntry{}, validationError(err)
	}

	return v.inner.UpdateEntry(ctx, userID, req)
}

func (v *VaultValidationService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	if err := v.validator.Validate(ctx, entryID); err != nil {
		return validationError(err)
	}

	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func (v *VaultValidationService) RevealField(ctx context.Context, userID int64, req models.RevealRequest) (models.RevealResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RevealResponse{}, validationError(err)
	}

	return v.inner.RevealField(ctx, userID, req)
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrMasterPasswordMissing) {
		return ErrMasterPasswordRequired
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
