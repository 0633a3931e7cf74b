// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService manages vault entries. Methods that touch encrypted fields
// require the master password in the request.
type VaultService interface {
	CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.VaultEntry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error)
	GetEntry(ctx context.Context, userID int64, entryID string) (models.VaultEntry, error)
	UpdateEntry(ctx context.Context, userID int64, req models.UpdateEntryRequest) (models.VaultEntry, error)
	DeleteEntry(ctx context.Context, userID int64, entryID string) error

	// RevealField decrypts exactly one secret field of one entry.
	RevealField(ctx context.Context, userID int64, req models.RevealRequest) (models.RevealResponse, error)
}

// IdentityService manages disposable mailbox identities.
type IdentityService interface {
	CreateIdentity(ctx context.Context, userID int64, req models.CreateIdentityRequest) (models.Identity, error)
	ListIdentities(ctx context.Context, userID int64) ([]models.Identity, error)
	GetCredentials(ctx context.Context, userID int64, identityID string) (models.IdentityCredentials, error)
	DeleteIdentity(ctx context.Context, userID int64, identityID string) error

	// PurgeExpired removes every expired identity and reports how many were
	// removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}
