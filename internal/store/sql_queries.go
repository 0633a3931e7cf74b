// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, encryption_salt)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, encryption_salt, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, encryption_salt, created_at
    FROM users
    WHERE login = $1;`

	getEncryptionSalt = `SELECT encryption_salt
    FROM users
    WHERE user_id = $1;`
)

const (
	vaultEntriesTable = "vault_entries"
	identitiesTable   = "identities"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var vaultMetadataColumns = []string{
	"id", "user_id", "name", "username", "url", "category",
	"notes_ciphertext IS NOT NULL AS has_notes",
	"created_at", "updated_at",
}

var vaultReturning = "RETURNING id, user_id, name, username, url, category, " +
	"notes_ciphertext IS NOT NULL AS has_notes, created_at, updated_at"

// cipherColumns returns the nonce, ciphertext and auth tag column names of a
// secret field.
func cipherColumns(field models.SecretField) (string, string, string) {
	prefix := string(field)
	return prefix + "_nonce", prefix + "_ciphertext", prefix + "_auth_tag"
}

func buildCreateEntryQuery(entry models.VaultEntry) (string, []any, error) {
	pn, pc, pt := cipherColumns(models.FieldPassword)
	nn, nc, nt := cipherColumns(models.FieldNotes)

	var notesNonce, notesCiphertext, notesTag any
	if entry.Notes != nil {
		notesNonce, notesCiphertext, notesTag = entry.Notes.Nonce, entry.Notes.Ciphertext, entry.Notes.AuthTag
	}

	return psql.Insert(vaultEntriesTable).
		Columns("id", "user_id", "name", "username", "url", "category", pn, pc, pt, nn, nc, nt).
		Values(entry.ID, entry.UserID, entry.Name, entry.Username, entry.URL, entry.Category,
			entry.Password.Nonce, entry.Password.Ciphertext, entry.Password.AuthTag,
			notesNonce, notesCiphertext, notesTag).
		Suffix(vaultReturning).
		ToSql()
}

func buildListEntriesQuery(userID int64) (string, []any, error) {
	return psql.Select(vaultMetadataColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func buildGetEntryQuery(userID int64, entryID string) (string, []any, error) {
	return psql.Select(vaultMetadataColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildGetCipherFieldQuery selects the triple of one field only.
func buildGetCipherFieldQuery(userID int64, entryID string, field models.SecretField) (string, []any, error) {
	nonce, ciphertext, tag := cipherColumns(field)

	return psql.Select(nonce, ciphertext, tag).
		From(vaultEntriesTable).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateEntryQuery renders a single UPDATE covering metadata and every
// re-encrypted field of update.
func buildUpdateEntryQuery(update models.VaultEntryUpdate) (string, []any, error) {
	b := psql.Update(vaultEntriesTable)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.URL != nil {
		b = b.Set("url", *update.URL)
	}
	if update.Category != nil {
		b = b.Set("category", *update.Category)
	}
	if update.Password != nil {
		b = setCipherField(b, models.FieldPassword, update.Password)
	}
	if update.Notes != nil {
		b = setCipherField(b, models.FieldNotes, update.Notes)
	} else if update.ClearNotes {
		b = setCipherField(b, models.FieldNotes, nil)
	}

	return b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(vaultReturning).
		ToSql()
}

// setCipherField writes all three columns of field; a nil cf stores NULLs.
func setCipherField(b sq.UpdateBuilder, field models.SecretField, cf *models.CipherField) sq.UpdateBuilder {
	nonce, ciphertext, tag := cipherColumns(field)
	if cf == nil {
		return b.Set(nonce, nil).Set(ciphertext, nil).Set(tag, nil)
	}
	return b.Set(nonce, cf.Nonce).Set(ciphertext, cf.Ciphertext).Set(tag, cf.AuthTag)
}

func buildDeleteEntryQuery(userID int64, entryID string) (string, []any, error) {
	return psql.Delete(vaultEntriesTable).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

var identityColumns = []string{
	"id", "user_id", "label", "address", "account_id",
	"password_nonce", "password_ciphertext", "password_auth_tag",
	"created_at", "expires_at",
}

func buildCreateIdentityQuery(identity models.Identity) (string, []any, error) {
	return psql.Insert(identitiesTable).
		Columns("id", "user_id", "label", "address", "account_id",
			"password_nonce", "password_ciphertext", "password_auth_tag", "expires_at").
		Values(identity.ID, identity.UserID, identity.Label, identity.Address, identity.AccountID,
			identity.MailboxPassword.Nonce, identity.MailboxPassword.Ciphertext, identity.MailboxPassword.AuthTag,
			identity.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildListIdentitiesQuery(userID int64, now time.Time) (string, []any, error) {
	return psql.Select(identityColumns...).
		From(identitiesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildGetIdentityQuery(userID int64, identityID string) (string, []any, error) {
	return psql.Select(identityColumns...).
		From(identitiesTable).
		Where(sq.Eq{"id": identityID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteIdentityQuery(userID int64, identityID string) (string, []any, error) {
	return psql.Delete(identitiesTable).
		Where(sq.Eq{"id": identityID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExpiredIdentitiesQuery(now time.Time) (string, []any, error) {
	return psql.Delete(identitiesTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
