// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	FieldLabel  = "label"
	maxLabelLen = 64
)

type IdentityValidator struct{}

func NewIdentityValidator() Validator {
	return &IdentityValidator{}
}

func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateIdentityRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateIdentityRequest:
		return v.validateCreate(*value, fields...)
	case string:
		return validateID(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *IdentityValidator) validateCreate(req models.CreateIdentityRequest, fields ...string) error {
	if shouldValidate(fields, FieldLabel) {
		return checkLen(FieldLabel, req.Label, maxLabelLen)
	}
	return nil
}
