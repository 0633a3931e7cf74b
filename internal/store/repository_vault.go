// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository] over the "vault_entries" table. Each secret field is
// stored as three text columns: <field>_nonce, <field>_ciphertext and
// <field>_auth_tag.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntryMetadata(row rowScanner) (models.VaultEntry, error) {
	var entry models.VaultEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Name,
		&entry.Username,
		&entry.URL,
		&entry.Category,
		&entry.HasNotes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return entry, err
}

// entryLookupError maps a failed single-entry lookup. A malformed ID is
// reported the same way as a missing entry.
func entryLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrEntryNotFound
	}
	return nil
}

func (v *vaultRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.CreateEntry").Msg("failed to build query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntryMetadata(v.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to insert vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (v *vaultRepository) ListEntries(ctx context.Context, userID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.ListEntries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.ListEntries").Int64("user_id", userID).Msg("failed to list vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0, 16)
	for rows.Next() {
		entry, scanErr := scanEntryMetadata(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "vaultRepository.ListEntries").Int64("user_id", userID).Msg("failed to scan vault entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "vaultRepository.ListEntries").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (v *vaultRepository) GetEntry(ctx context.Context, userID int64, entryID string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(userID, entryID)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntryMetadata(v.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if notFound := entryLookupError(err); notFound != nil {
			return models.VaultEntry{}, notFound
		}
		log.Err(err).Str("func", "vaultRepository.GetEntry").Int64("user_id", userID).Msg("failed to get vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (v *vaultRepository) GetCipherField(ctx context.Context, userID int64, entryID string, field models.SecretField) (*models.CipherField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCipherFieldQuery(userID, entryID, field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var nonce, ciphertext, tag sql.NullString
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&nonce, &ciphertext, &tag)
	if err != nil {
		if notFound := entryLookupError(err); notFound != nil {
			return nil, notFound
		}
		log.Err(err).
			Str("func", "vaultRepository.GetCipherField").
			Int64("user_id", userID).
			Str("field", string(field)).
			Msg("failed to get cipher field")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !nonce.Valid && !ciphertext.Valid && !tag.Valid {
		return nil, nil
	}

	return &models.CipherField{
		Nonce:      nonce.String,
		Ciphertext: ciphertext.String,
		AuthTag:    tag.String,
	}, nil
}

// UpdateEntry applies update in one statement and returns the new metadata.
func (v *vaultRepository) UpdateEntry(ctx context.Context, update models.VaultEntryUpdate) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(update)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.UpdateEntry").Msg("failed to build query")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntryMetadata(v.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if notFound := entryLookupError(err); notFound != nil {
			return models.VaultEntry{}, notFound
		}
		log.Err(err).Str("func", "vaultRepository.UpdateEntry").Int64("user_id", update.UserID).Msg("failed to update vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (v *vaultRepository) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(userID, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := v.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if notFound := entryLookupError(err); notFound != nil {
			return notFound
		}
		log.Err(err).Str("func", "vaultRepository.DeleteEntry").Int64("user_id", userID).Msg("failed to delete vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
