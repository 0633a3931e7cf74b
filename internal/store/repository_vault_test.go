// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

var entryColumns = []string{"id", "user_id", "name", "username", "url", "category", "has_notes", "created_at", "updated_at"}

func entryRow(id string, userID int64, hasNotes bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(entryColumns).
		AddRow(id, userID, "GitHub", "octocat", "https://github.com", "work", hasNotes, now, now)
}

// ── CreateEntry ──

func TestVaultCreateEntry_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	entry := models.VaultEntry{
		ID:       "0190a4c2-0000-7000-8000-000000000001",
		UserID:   7,
		Name:     "GitHub",
		Category: models.CategoryWork,
		Password: models.CipherField{Nonce: "n", Ciphertext: "c", AuthTag: "t"},
	}

	mock.ExpectQuery("INSERT INTO vault_entries").
		WillReturnRows(entryRow(entry.ID, 7, false))

	created, err := repo.CreateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, created.ID)
	assert.Equal(t, models.CategoryWork, created.Category)
	assert.False(t, created.HasNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListEntries / GetEntry ──

func TestVaultListEntries_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	rows := entryRow("a", 7, true)
	rows.AddRow("b", 7, "Bank", "me", "", "finance", false, time.Now(), time.Now())

	mock.ExpectQuery("FROM vault_entries WHERE user_id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].HasNotes)
	assert.Equal(t, models.CategoryFinance, entries[1].Category)
	assert.True(t, entries[0].Password.IsZero())
}

func TestVaultListEntries_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("FROM vault_entries").WillReturnError(errors.New("boom"))

	_, err := repo.ListEntries(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestVaultGetEntry_NotOwnedIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("FROM vault_entries WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("a", int64(99)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.GetEntry(context.Background(), 99, "a")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestVaultGetEntry_MalformedIDIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("FROM vault_entries").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetEntry(context.Background(), 1, "not-a-uuid")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ── GetCipherField ──

func TestVaultGetCipherField(t *testing.T) {
	cipherCols := []string{"nonce", "ciphertext", "auth_tag"}

	tests := []struct {
		name    string
		field   models.SecretField
		query   string
		rows    *sqlmock.Rows
		want    *models.CipherField
		wantErr error
	}{
		{
			name:  "password",
			field: models.FieldPassword,
			query: "SELECT password_nonce, password_ciphertext, password_auth_tag FROM vault_entries",
			rows:  sqlmock.NewRows(cipherCols).AddRow("n", "c", "t"),
			want:  &models.CipherField{Nonce: "n", Ciphertext: "c", AuthTag: "t"},
		},
		{
			name:  "notes never set",
			field: models.FieldNotes,
			query: "SELECT notes_nonce, notes_ciphertext, notes_auth_tag FROM vault_entries",
			rows:  sqlmock.NewRows(cipherCols).AddRow(nil, nil, nil),
			want:  nil,
		},
		{
			name:  "notes holding empty plaintext",
			field: models.FieldNotes,
			query: "SELECT notes_nonce, notes_ciphertext, notes_auth_tag FROM vault_entries",
			rows:  sqlmock.NewRows(cipherCols).AddRow("n", "", "t"),
			want:  &models.CipherField{Nonce: "n", Ciphertext: "", AuthTag: "t"},
		},
		{
			name:    "entry missing",
			field:   models.FieldPassword,
			query:   "FROM vault_entries",
			rows:    sqlmock.NewRows(cipherCols),
			wantErr: ErrEntryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewVaultRepository(db, logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs("entry", int64(7)).
				WillReturnRows(tt.rows)

			got, err := repo.GetCipherField(context.Background(), 7, "entry", tt.field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── UpdateEntry ──

func TestVaultUpdateEntry_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	name := "GitLab"
	update := models.VaultEntryUpdate{
		ID:       "a",
		UserID:   7,
		Name:     &name,
		Password: &models.CipherField{Nonce: "pn", Ciphertext: "pc", AuthTag: "pt"},
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vault_entries SET name = $1, password_nonce = $2")).
		WithArgs("GitLab", "pn", "pc", "pt", "a", int64(7)).
		WillReturnRows(entryRow("a", 7, false))

	_, err := repo.UpdateEntry(context.Background(), update)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultUpdateEntry_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE vault_entries").WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.UpdateEntry(context.Background(), models.VaultEntryUpdate{ID: "a", UserID: 7, ClearNotes: true})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ── DeleteEntry ──

func TestVaultDeleteEntry(t *testing.T) {
	tests := []struct {
		name    string
		result  func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM vault_entries").WithArgs("a", int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not owned",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM vault_entries").WithArgs("a", int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrEntryNotFound,
		},
		{
			name: "db failure",
			result: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM vault_entries").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewVaultRepository(db, logger.Nop())
			tt.result(mock)

			err := repo.DeleteEntry(context.Background(), 7, "a")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
