// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateCredentials(value, fields...)
	case *models.User:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(user models.User, fields ...string) error {
	if shouldValidate(fields, FieldLogin) {
		n := utf8.RuneCountInString(strings.TrimSpace(user.Login))
		if n < 3 || n > 64 {
			return ErrInvalidLogin
		}
	}

	if shouldValidate(fields, FieldPassword) {
		n := utf8.RuneCountInString(user.Password)
		if n < 8 || n > 128 {
			return ErrInvalidPassword
		}
	}

	return nil
}
