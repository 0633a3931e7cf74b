// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts and their per-user encryption salts. A salt
// is written once by CreateUser; there is no way to change it afterwards.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetEncryptionSalt(ctx context.Context, userID int64) (string, error)
}

// VaultRepository stores vault entries. Every method is scoped by user ID so
// that another user's entry is indistinguishable from a missing one.
type VaultRepository interface {
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error)
	GetEntry(ctx context.Context, userID int64, entryID string) (models.VaultEntry, error)
	// GetCipherField loads only the triple of the requested field. A nil
	// result with a nil error means the field was never set.
	GetCipherField(ctx context.Context, userID int64, entryID string, field models.SecretField) (*models.CipherField, error)
	UpdateEntry(ctx context.Context, update models.VaultEntryUpdate) (models.VaultEntry, error)
	DeleteEntry(ctx context.Context, userID int64, entryID string) error
}

// IdentityRepository stores disposable mailbox identities.
type IdentityRepository interface {
	CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error)
	ListIdentities(ctx context.Context, userID int64, now time.Time) ([]models.Identity, error)
	GetIdentity(ctx context.Context, userID int64, identityID string) (models.Identity, error)
	DeleteIdentity(ctx context.Context, userID int64, identityID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
