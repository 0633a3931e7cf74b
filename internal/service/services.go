// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/adapter"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
)

type Services struct {
	AuthService     AuthService
	VaultService    VaultService
	IdentityService IdentityService
	AppInfoService  AppInfoService
}

// Crypto bundles the cryptographic components shared by the services.
type Crypto struct {
	KeyDerivation crypto.KeyDerivation
	FieldCipher   crypto.SecretCipher
	ServerCipher  crypto.ServerCipher
}

func NewServices(
	repos *store.Repositories,
	cr Crypto,
	mailbox adapter.MailboxAdapter,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	authService, err := NewAuthService(repos.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	vaultService := NewVaultValidationService().Wrap(
		NewVaultService(repos.UserRepository, repos.VaultRepository, cr.KeyDerivation, cr.FieldCipher, ids, logger),
	)

	return &Services{
		AuthService:     authService,
		VaultService:    vaultService,
		IdentityService: NewIdentityService(repos.IdentityRepository, mailbox, cr.ServerCipher, ids, cfg.Workers, logger),
		AppInfoService:  appInfoService,
	}, nil
}
