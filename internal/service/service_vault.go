// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

type idGenerator interface {
	Generate() string
}

// vaultService is the concrete implementation of VaultService.
//
// It holds no per-user state: each call derives its own key and zeroes it
// before returning. Keys are never cached between calls.
type vaultService struct {
	userRepository  store.UserRepository
	vaultRepository store.VaultRepository

	kdf    crypto.KeyDerivation
	cipher crypto.SecretCipher
	ids    idGenerator

	logger *logger.Logger
}

func NewVaultService(
	userRepository store.UserRepository,
	vaultRepository store.VaultRepository,
	kdf crypto.KeyDerivation,
	cipher crypto.SecretCipher,
	ids idGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		userRepository:  userRepository,
		vaultRepository: vaultRepository,
		kdf:             kdf,
		cipher:          cipher,
		ids:             ids,
		logger:          logger,
	}
}

// CreateEntry derives the owner's key once and encrypts the password and, if
// present, the notes before the entry is inserted in a single statement.
func (s *vaultService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	key, err := s.deriveKey(ctx, userID, req.MasterPassword)
	req.MasterPassword = ""
	if err != nil {
		return models.VaultEntry{}, err
	}
	defer key.Destroy()

	password, err := s.encrypt(ctx, key, req.Password)
	if err != nil {
		return models.VaultEntry{}, err
	}

	var notes *models.CipherField
	if req.Notes != nil {
		field, err := s.encrypt(ctx, key, *req.Notes)
		if err != nil {
			return models.VaultEntry{}, err
		}
		notes = &field
	}

	category := req.Category
	if category == "" {
		category = models.CategoryOther
	}

	entry := models.VaultEntry{
		ID:       s.ids.Generate(),
		UserID:   userID,
		Name:     req.Name,
		Username: req.Username,
		URL:      req.URL,
		Category: category,
		Password: password,
		Notes:    notes,
	}

	created, err := s.vaultRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "vaultService.CreateEntry").Int64("user_id", userID).Msg("failed to save vault entry")
		return models.VaultEntry{}, fmt.Errorf("failed to save vault entry: %w", err)
	}

	return created, nil
}

func (s *vaultService) ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error) {
	entries, err := s.vaultRepository.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault entries: %w", err)
	}

	return entries, nil
}

func (s *vaultService) GetEntry(ctx context.Context, userID int64, entryID string) (models.VaultEntry, error) {
	entry, err := s.vaultRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("failed to get vault entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry applies a partial update. Metadata-only updates need no
// master password. When a secret changes, the master password is first
// checked against the stored password field, so an entry never ends up with
// fields encrypted under different keys; every changed secret is then
// encrypted under that key and written together with the metadata.
func (s *vaultService) UpdateEntry(ctx context.Context, userID int64, req models.UpdateEntryRequest) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if req.IsEmpty() {
		return models.VaultEntry{}, ErrInvalidDataProvided
	}

	update := models.VaultEntryUpdate{
		ID:         req.EntryID,
		UserID:     userID,
		Name:       req.Name,
		Username:   req.Username,
		URL:        req.URL,
		Category:   req.Category,
		ClearNotes: req.ClearNotes,
	}

	if req.ChangesSecrets() {
		current, err := s.vaultRepository.GetCipherField(ctx, userID, req.EntryID, models.FieldPassword)
		if err != nil {
			return models.VaultEntry{}, fmt.Errorf("failed to load vault entry: %w", err)
		}
		if current == nil {
			log.Error().Str("func", "vaultService.UpdateEntry").Str("entry_id", req.EntryID).Msg("vault entry has no password field")
			return models.VaultEntry{}, ErrCorruptedSecret
		}

		key, err := s.deriveKey(ctx, userID, req.MasterPassword)
		req.MasterPassword = ""
		if err != nil {
			return models.VaultEntry{}, err
		}
		defer key.Destroy()

		if _, err := s.cipher.Decrypt(key, *current); err != nil {
			return models.VaultEntry{}, s.decryptError(ctx, err, req.EntryID, models.FieldPassword)
		}

		if req.Password != nil {
			field, err := s.encrypt(ctx, key, *req.Password)
			if err != nil {
				return models.VaultEntry{}, err
			}
			update.Password = &field
		}

		if req.Notes != nil {
			field, err := s.encrypt(ctx, key, *req.Notes)
			if err != nil {
				return models.VaultEntry{}, err
			}
			update.Notes = &field
		}
	}

	updated, err := s.vaultRepository.UpdateEntry(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "vaultService.UpdateEntry").Str("entry_id", req.EntryID).Msg("failed to update vault entry")
		return models.VaultEntry{}, fmt.Errorf("failed to update vault entry: %w", err)
	}

	return updated, nil
}

func (s *vaultService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	if err := s.vaultRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to delete vault entry: %w", err)
	}

	return nil
}

// RevealField returns the plaintext of one field.
//
// The owner-scoped field lookup runs first, so a foreign or missing entry
// is reported as store.ErrEntryNotFound without any key being derived.
func (s *vaultService) RevealField(ctx context.Context, userID int64, req models.RevealRequest) (models.RevealResponse, error) {
	field, err := s.vaultRepository.GetCipherField(ctx, userID, req.EntryID, req.Field)
	if err != nil {
		return models.RevealResponse{}, fmt.Errorf("failed to load vault field: %w", err)
	}
	if field == nil {
		return models.RevealResponse{}, ErrFieldNotSet
	}

	key, err := s.deriveKey(ctx, userID, req.MasterPassword)
	req.MasterPassword = ""
	if err != nil {
		return models.RevealResponse{}, err
	}
	defer key.Destroy()

	plaintext, err := s.cipher.Decrypt(key, *field)
	if err != nil {
		return models.RevealResponse{}, s.decryptError(ctx, err, req.EntryID, req.Field)
	}

	return models.RevealResponse{Field: req.Field, Value: plaintext}, nil
}

// deriveKey loads the user's salt and derives the vault key from
// masterPassword. The caller owns the returned key and must destroy it.
func (s *vaultService) deriveKey(ctx context.Context, userID int64, masterPassword string) (crypto.Key, error) {
	log := logger.FromContext(ctx)

	if masterPassword == "" {
		return nil, ErrMasterPasswordRequired
	}

	salt, err := s.userRepository.GetEncryptionSalt(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.deriveKey").Int64("user_id", userID).Msg("failed to load encryption salt")
		return nil, fmt.Errorf("failed to load encryption salt: %w", err)
	}
	if salt == "" {
		log.Error().Str("func", "vaultService.deriveKey").Int64("user_id", userID).Msg("user has no encryption salt")
		return nil, ErrEncryptionSaltMissing
	}

	key, err := s.kdf.Derive(ctx, masterPassword, salt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyUnavailable, ctxErr)
		}
		log.Err(err).Str("func", "vaultService.deriveKey").Int64("user_id", userID).Msg("key derivation failed")
		return nil, ErrKeyUnavailable
	}

	return key, nil
}

func (s *vaultService) encrypt(ctx context.Context, key crypto.Key, plaintext string) (models.CipherField, error) {
	field, err := s.cipher.Encrypt(key, plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.encrypt").Msg("failed to encrypt vault field")
		return models.CipherField{}, ErrSecretEncryption
	}

	return field, nil
}

// decryptError maps a decryption failure to the error returned to callers.
// Authentication failures are expected user errors and are logged at warn
// level; anything else means the stored data or the key is broken.
func (s *vaultService) decryptError(ctx context.Context, err error, entryID string, field models.SecretField) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, crypto.ErrDecryptionFailed) {
		log.Warn().Str("func", "vaultService.decrypt").Str("entry_id", entryID).Str("field", string(field)).
			Msg("vault field authentication failed")
		return ErrWrongMasterPassword
	}

	log.Error().Str("func", "vaultService.decrypt").Str("entry_id", entryID).Str("field", string(field)).
		Str("reason", reasonOf(err)).Msg("vault field cannot be decrypted")
	return ErrCorruptedSecret
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, crypto.ErrMalformedCiphertext):
		return "malformed_ciphertext"
	case errors.Is(err, crypto.ErrInvalidKey):
		return "invalid_key"
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return "authentication_failed"
	default:
		return "unknown"
	}
}
