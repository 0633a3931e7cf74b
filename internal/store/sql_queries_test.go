// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

func strPtr(s string) *string { return &s }

// ── vault entries ──

func TestBuildGetCipherFieldQuery_SelectsOnlyRequestedField(t *testing.T) {
	query, args, err := buildGetCipherFieldQuery(7, "entry-1", models.FieldNotes)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT notes_nonce, notes_ciphertext, notes_auth_tag FROM vault_entries WHERE id = $1 AND user_id = $2",
		query)
	assert.Equal(t, []any{"entry-1", int64(7)}, args)
	assert.NotContains(t, query, "password_")
}

func TestBuildCreateEntryQuery_WithoutNotesStoresNulls(t *testing.T) {
	entry := models.VaultEntry{
		ID:       "entry-1",
		UserID:   7,
		Name:     "GitHub",
		Category: models.CategoryWork,
		Password: models.CipherField{Nonce: "n", Ciphertext: "c", AuthTag: "t"},
	}

	query, args, err := buildCreateEntryQuery(entry)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO vault_entries")
	assert.Contains(t, query, "RETURNING id")
	require.Len(t, args, 12)
	assert.Equal(t, "n", args[6])
	assert.Nil(t, args[9])
	assert.Nil(t, args[10])
	assert.Nil(t, args[11])
}

func TestBuildUpdateEntryQuery_SingleStatementForAllChanges(t *testing.T) {
	update := models.VaultEntryUpdate{
		ID:       "entry-1",
		UserID:   7,
		Name:     strPtr("GitLab"),
		Password: &models.CipherField{Nonce: "pn", Ciphertext: "pc", AuthTag: "pt"},
		Notes:    &models.CipherField{Nonce: "nn", Ciphertext: "nc", AuthTag: "nt"},
	}

	query, args, err := buildUpdateEntryQuery(update)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE vault_entries SET name = $1, password_nonce = $2, password_ciphertext = $3, password_auth_tag = $4, "+
			"notes_nonce = $5, notes_ciphertext = $6, notes_auth_tag = $7, updated_at = NOW() "+
			"WHERE id = $8 AND user_id = $9 "+vaultReturning,
		query)
	assert.Equal(t, []any{"GitLab", "pn", "pc", "pt", "nn", "nc", "nt", "entry-1", int64(7)}, args)
}

func TestBuildUpdateEntryQuery_ClearNotes(t *testing.T) {
	query, args, err := buildUpdateEntryQuery(models.VaultEntryUpdate{ID: "e", UserID: 1, ClearNotes: true})
	require.NoError(t, err)

	assert.Contains(t, query, "notes_nonce = $1, notes_ciphertext = $2, notes_auth_tag = $3")
	assert.Equal(t, []any{nil, nil, nil, "e", int64(1)}, args)
}

// ── identities ──

func TestBuildDeleteExpiredIdentitiesQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteExpiredIdentitiesQuery(now)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM identities WHERE expires_at <= $1", query)
	assert.Equal(t, []any{now}, args)
}

func TestBuildListIdentitiesQuery_ExcludesExpired(t *testing.T) {
	now := time.Now()

	query, args, err := buildListIdentitiesQuery(3, now)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE user_id = $1 AND expires_at > $2")
	assert.Equal(t, []any{int64(3), now}, args)
}
