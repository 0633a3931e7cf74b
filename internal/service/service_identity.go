// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/adapter"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/validators"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	mailboxLocalPartLength = 10
	mailboxPasswordLength  = 20
)

// identityService creates disposable mailboxes at the provider and keeps
// their passwords encrypted under the server key.
type identityService struct {
	identityRepository store.IdentityRepository
	mailbox            adapter.MailboxAdapter
	cipher             crypto.ServerCipher
	validator          validators.Validator
	ids                idGenerator

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

func NewIdentityService(
	identityRepository store.IdentityRepository,
	mailbox adapter.MailboxAdapter,
	cipher crypto.ServerCipher,
	ids idGenerator,
	cfg config.Workers,
	logger *logger.Logger,
) IdentityService {
	return &identityService{
		identityRepository: identityRepository,
		mailbox:            mailbox,
		cipher:             cipher,
		validator:          validators.NewIdentityValidator(),
		ids:                ids,
		ttl:                cfg.IdentityTTL,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *identityService) CreateIdentity(ctx context.Context, userID int64, req models.CreateIdentityRequest) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	domains, err := s.mailbox.Domains(ctx)
	if err != nil {
		log.Err(err).Str("func", "identityService.CreateIdentity").Msg("failed to list mailbox domains")
		return models.Identity{}, fmt.Errorf("failed to list mailbox domains: %w", err)
	}
	if len(domains) == 0 {
		return models.Identity{}, adapter.ErrNoActiveDomains
	}

	local, err := utils.RandomString(mailboxLocalPartLength)
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to generate mailbox address: %w", err)
	}
	password, err := utils.GeneratePassword(mailboxPasswordLength)
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to generate mailbox password: %w", err)
	}

	address := local + "@" + domains[0]
	mailbox, err := s.mailbox.CreateMailbox(ctx, address, password)
	if err != nil {
		log.Err(err).Str("func", "identityService.CreateIdentity").Str("address", address).Msg("failed to create mailbox")
		return models.Identity{}, fmt.Errorf("failed to create mailbox: %w", err)
	}
	if mailbox.Address == "" {
		mailbox.Address = address
	}

	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		log.Err(err).Str("func", "identityService.CreateIdentity").Msg("failed to encrypt mailbox password")
		return models.Identity{}, ErrSecretEncryption
	}

	now := s.now()
	identity := models.Identity{
		ID:              s.ids.Generate(),
		UserID:          userID,
		Label:           req.Label,
		Address:         mailbox.Address,
		AccountID:       mailbox.AccountID,
		MailboxPassword: encrypted,
		ExpiresAt:       now.Add(s.ttl).UTC(),
	}

	created, err := s.identityRepository.CreateIdentity(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "identityService.CreateIdentity").Int64("user_id", userID).Msg("failed to save identity")
		return models.Identity{}, fmt.Errorf("failed to save identity: %w", err)
	}

	return created, nil
}

func (s *identityService) ListIdentities(ctx context.Context, userID int64) ([]models.Identity, error) {
	identities, err := s.identityRepository.ListIdentities(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	return identities, nil
}

// GetCredentials decrypts the mailbox password with the server key. An
// expired identity that the sweeper has not removed yet is reported as
// missing.
func (s *identityService) GetCredentials(ctx context.Context, userID int64, identityID string) (models.IdentityCredentials, error) {
	if err := s.validator.Validate(ctx, identityID); err != nil {
		return models.IdentityCredentials{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	identity, err := s.identityRepository.GetIdentity(ctx, userID, identityID)
	if err != nil {
		return models.IdentityCredentials{}, fmt.Errorf("failed to get identity: %w", err)
	}
	if !identity.ExpiresAt.After(s.now()) {
		return models.IdentityCredentials{}, store.ErrIdentityNotFound
	}

	password, err := s.cipher.Decrypt(identity.MailboxPassword)
	if err != nil {
		logger.FromContext(ctx).Error().
			Str("func", "identityService.GetCredentials").
			Str("identity_id", identityID).
			Str("reason", reasonOf(err)).
			Msg("mailbox password cannot be decrypted")
		return models.IdentityCredentials{}, ErrCorruptedSecret
	}

	return models.IdentityCredentials{Address: identity.Address, Password: password}, nil
}

func (s *identityService) DeleteIdentity(ctx context.Context, userID int64, identityID string) error {
	if err := s.validator.Validate(ctx, identityID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.identityRepository.DeleteIdentity(ctx, userID, identityID); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

func (s *identityService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.identityRepository.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired identities: %w", err)
	}

	return removed, nil
}
