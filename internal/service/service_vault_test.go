// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/crypto"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/mock"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	testUserID   int64 = 7
	testEntryID        = "0190a4c2-7a1b-7c3d-8e4f-123456789abc"
	testMaster         = "CorrectHorseBatteryStaple"
	wrongMaster        = "WrongHorseBatteryStaple"
	testPassword       = "Tr0ub4dor&3"
)

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

type failingCipher struct{}

func (failingCipher) Encrypt(crypto.Key, string) (models.CipherField, error) {
	return models.CipherField{}, crypto.ErrEncryptionFailed
}

func (failingCipher) Decrypt(crypto.Key, models.CipherField) (string, error) {
	return "", crypto.ErrDecryptionFailed
}

func testKDF(t *testing.T) *crypto.KeyDeriver {
	t.Helper()
	kdf, err := crypto.NewKeyDeriver(config.Crypto{
		KDFIterations:            1000,
		KDFDigest:                "sha512",
		KeyLength:                crypto.KeySize,
		MaxConcurrentDerivations: 2,
	})
	require.NoError(t, err)
	return kdf
}

type vaultFixture struct {
	users  *mock.MockUserRepository
	vault  *mock.MockVaultRepository
	kdf    *crypto.KeyDeriver
	cipher *crypto.FieldCipher
	salt   string
	svc    VaultService
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)

	f := &vaultFixture{
		users:  mock.NewMockUserRepository(ctrl),
		vault:  mock.NewMockVaultRepository(ctrl),
		kdf:    testKDF(t),
		cipher: crypto.NewFieldCipher(),
		salt:   salt,
	}
	f.svc = NewVaultService(f.users, f.vault, f.kdf, f.cipher, fixedIDs{id: testEntryID}, logger.Nop())
	return f
}

// sealed encrypts plaintext under the fixture user's key for master.
func (f *vaultFixture) sealed(t *testing.T, master, plaintext string) models.CipherField {
	t.Helper()
	key, err := f.kdf.Derive(context.Background(), master, f.salt)
	require.NoError(t, err)
	defer key.Destroy()

	field, err := f.cipher.Encrypt(key, plaintext)
	require.NoError(t, err)
	return field
}

func (f *vaultFixture) open(t *testing.T, master string, field models.CipherField) string {
	t.Helper()
	key, err := f.kdf.Derive(context.Background(), master, f.salt)
	require.NoError(t, err)
	defer key.Destroy()

	plaintext, err := f.cipher.Decrypt(key, field)
	require.NoError(t, err)
	return plaintext
}

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// CreateEntry
// ─────────────────────────────────────────────

func TestVaultService_CreateEntry_EncryptsSecrets(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	var saved models.VaultEntry
	f.vault.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
			saved = entry
			return models.VaultEntry{ID: entry.ID, UserID: entry.UserID, Name: entry.Name, Category: entry.Category, HasNotes: entry.Notes != nil}, nil
		})

	created, err := f.svc.CreateEntry(ctx, testUserID, models.CreateEntryRequest{
		Name:           "GitHub",
		Password:       testPassword,
		Notes:          strPtr("recovery codes in drawer"),
		MasterPassword: testMaster,
	})
	require.NoError(t, err)

	assert.Equal(t, testEntryID, created.ID)
	assert.Equal(t, models.CategoryOther, created.Category)
	assert.True(t, created.HasNotes)

	assert.Equal(t, testUserID, saved.UserID)
	assert.NotContains(t, saved.Password.Ciphertext, testPassword)
	assert.Equal(t, testPassword, f.open(t, testMaster, saved.Password))
	require.NotNil(t, saved.Notes)
	assert.Equal(t, "recovery codes in drawer", f.open(t, testMaster, *saved.Notes))
}

func TestVaultService_CreateEntry_WithoutNotes(t *testing.T) {
	f := newVaultFixture(t)

	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)
	f.vault.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
			assert.Nil(t, entry.Notes)
			return entry, nil
		})

	_, err := f.svc.CreateEntry(context.Background(), testUserID, models.CreateEntryRequest{
		Name: "Bank", Password: testPassword, MasterPassword: testMaster,
	})
	require.NoError(t, err)
}

func TestVaultService_CreateEntry_EncryptFailureAbortsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	vault := mock.NewMockVaultRepository(ctrl)
	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)

	users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(salt, nil)
	// no CreateEntry expectation: the repository must not be called

	svc := NewVaultService(users, vault, testKDF(t), failingCipher{}, fixedIDs{id: testEntryID}, logger.Nop())
	_, err = svc.CreateEntry(context.Background(), testUserID, models.CreateEntryRequest{
		Name: "x", Password: testPassword, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, ErrSecretEncryption)
}

func TestVaultService_CreateEntry_MissingSalt(t *testing.T) {
	f := newVaultFixture(t)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return("", nil)

	_, err := f.svc.CreateEntry(context.Background(), testUserID, models.CreateEntryRequest{
		Name: "x", Password: testPassword, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, ErrEncryptionSaltMissing)
}

func TestVaultService_CreateEntry_CancelledContext(t *testing.T) {
	f := newVaultFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	_, err := f.svc.CreateEntry(ctx, testUserID, models.CreateEntryRequest{
		Name: "x", Password: testPassword, MasterPassword: testMaster,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrKeyUnavailable)
}

// ─────────────────────────────────────────────
// RevealField
// ─────────────────────────────────────────────

func TestVaultService_RevealField_Password(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.sealed(t, testMaster, testPassword)

	gomock.InOrder(
		f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&stored, nil),
		f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil),
	)

	resp, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldPassword, MasterPassword: testMaster,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RevealResponse{Field: models.FieldPassword, Value: testPassword}, resp)
}

func TestVaultService_RevealField_WrongMasterPassword(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.sealed(t, testMaster, testPassword)

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&stored, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	_, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldPassword, MasterPassword: wrongMaster,
	})
	assert.ErrorIs(t, err, ErrWrongMasterPassword)
	assert.Equal(t, "incorrect master password or data corrupted", err.Error())
	assert.NotContains(t, err.Error(), wrongMaster)
}

func TestVaultService_RevealField_TamperedLooksLikeWrongPassword(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.sealed(t, testMaster, testPassword)
	// swap in the tag of another encryption of the same plaintext
	other := f.sealed(t, testMaster, testPassword)
	stored.AuthTag = other.AuthTag

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&stored, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	_, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldPassword, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, ErrWrongMasterPassword)
}

func TestVaultService_RevealField_MalformedIsCorruption(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.sealed(t, testMaster, testPassword)
	stored.Nonce = "AAAA"

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&stored, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	_, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldPassword, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, ErrCorruptedSecret)
	assert.False(t, errors.Is(err, ErrWrongMasterPassword))
}

func TestVaultService_RevealField_ForeignEntryDerivesNothing(t *testing.T) {
	f := newVaultFixture(t)

	// no GetEncryptionSalt expectation: the salt must not be loaded
	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldNotes).
		Return(nil, store.ErrEntryNotFound)

	_, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldNotes, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestVaultService_RevealField_NotesNeverSet(t *testing.T) {
	f := newVaultFixture(t)
	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldNotes).Return(nil, nil)

	_, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldNotes, MasterPassword: testMaster,
	})
	assert.ErrorIs(t, err, ErrFieldNotSet)
}

func TestVaultService_RevealField_EmptyNotesRoundTrip(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.sealed(t, testMaster, "")

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldNotes).Return(&stored, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	resp, err := f.svc.RevealField(context.Background(), testUserID, models.RevealRequest{
		EntryID: testEntryID, Field: models.FieldNotes, MasterPassword: testMaster,
	})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Value)
}

// ─────────────────────────────────────────────
// UpdateEntry
// ─────────────────────────────────────────────

func TestVaultService_UpdateEntry_MetadataOnly(t *testing.T) {
	f := newVaultFixture(t)
	name := "GitHub (work)"

	f.vault.EXPECT().UpdateEntry(gomock.Any(), models.VaultEntryUpdate{
		ID: testEntryID, UserID: testUserID, Name: &name,
	}).Return(models.VaultEntry{ID: testEntryID, Name: name}, nil)

	updated, err := f.svc.UpdateEntry(context.Background(), testUserID, models.UpdateEntryRequest{
		EntryID: testEntryID, Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestVaultService_UpdateEntry_SecretsUseOneKey(t *testing.T) {
	f := newVaultFixture(t)
	current := f.sealed(t, testMaster, testPassword)

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&current, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil).Times(1)
	f.vault.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.VaultEntryUpdate) (models.VaultEntry, error) {
			require.NotNil(t, u.Password)
			require.NotNil(t, u.Notes)
			assert.Equal(t, "n3w-passw0rd", f.open(t, testMaster, *u.Password))
			assert.Equal(t, "new notes", f.open(t, testMaster, *u.Notes))
			assert.NotEqual(t, current.Nonce, u.Password.Nonce)
			return models.VaultEntry{ID: u.ID, HasNotes: true}, nil
		})

	_, err := f.svc.UpdateEntry(context.Background(), testUserID, models.UpdateEntryRequest{
		EntryID:        testEntryID,
		Password:       strPtr("n3w-passw0rd"),
		Notes:          strPtr("new notes"),
		MasterPassword: testMaster,
	})
	require.NoError(t, err)
}

func TestVaultService_UpdateEntry_WrongMasterPasswordWritesNothing(t *testing.T) {
	f := newVaultFixture(t)
	current := f.sealed(t, testMaster, testPassword)

	f.vault.EXPECT().GetCipherField(gomock.Any(), testUserID, testEntryID, models.FieldPassword).Return(&current, nil)
	f.users.EXPECT().GetEncryptionSalt(gomock.Any(), testUserID).Return(f.salt, nil)

	_, err := f.svc.UpdateEntry(context.Background(), testUserID, models.UpdateEntryRequest{
		EntryID:        testEntryID,
		Password:       strPtr("n3w-passw0rd"),
		MasterPassword: wrongMaster,
	})
	assert.ErrorIs(t, err, ErrWrongMasterPassword)
}

func TestVaultService_UpdateEntry_ClearNotes(t *testing.T) {
	f := newVaultFixture(t)

	f.vault.EXPECT().UpdateEntry(gomock.Any(), models.VaultEntryUpdate{
		ID: testEntryID, UserID: testUserID, ClearNotes: true,
	}).Return(models.VaultEntry{ID: testEntryID}, nil)

	_, err := f.svc.UpdateEntry(context.Background(), testUserID, models.UpdateEntryRequest{
		EntryID: testEntryID, ClearNotes: true,
	})
	require.NoError(t, err)
}

func TestVaultService_UpdateEntry_Empty(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.svc.UpdateEntry(context.Background(), testUserID, models.UpdateEntryRequest{EntryID: testEntryID})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Pass-through operations
// ─────────────────────────────────────────────

func TestVaultService_ListGetDelete(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	now := time.Now()

	f.vault.EXPECT().ListEntries(gomock.Any(), testUserID).
		Return([]models.VaultEntry{{ID: testEntryID, CreatedAt: now}}, nil)
	f.vault.EXPECT().GetEntry(gomock.Any(), testUserID, testEntryID).
		Return(models.VaultEntry{ID: testEntryID}, nil)
	f.vault.EXPECT().DeleteEntry(gomock.Any(), testUserID, testEntryID).Return(store.ErrEntryNotFound)

	entries, err := f.svc.ListEntries(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entry, err := f.svc.GetEntry(ctx, testUserID, testEntryID)
	require.NoError(t, err)
	assert.Equal(t, testEntryID, entry.ID)

	assert.ErrorIs(t, f.svc.DeleteEntry(ctx, testUserID, testEntryID), store.ErrEntryNotFound)
}

// ─────────────────────────────────────────────
// VaultValidationService
// ─────────────────────────────────────────────

func TestVaultValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultService(ctrl)
	svc := NewVaultValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.RevealField(ctx, testUserID, models.RevealRequest{EntryID: testEntryID, Field: models.FieldPassword})
	assert.ErrorIs(t, err, ErrMasterPasswordRequired)

	_, err = svc.CreateEntry(ctx, testUserID, models.CreateEntryRequest{Password: "x", MasterPassword: "m"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.GetEntry(ctx, testUserID, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.DeleteEntry(ctx, testUserID, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultService(ctrl)
	svc := NewVaultValidationService().Wrap(inner)

	req := models.RevealRequest{EntryID: testEntryID, Field: models.FieldNotes, MasterPassword: testMaster}
	inner.EXPECT().RevealField(gomock.Any(), testUserID, req).Return(models.RevealResponse{Field: models.FieldNotes, Value: "v"}, nil)
	inner.EXPECT().ListEntries(gomock.Any(), testUserID).Return(nil, nil)

	resp, err := svc.RevealField(context.Background(), testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, "v", resp.Value)

	_, err = svc.ListEntries(context.Background(), testUserID)
	require.NoError(t, err)
}
