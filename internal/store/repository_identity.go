// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

// identityRepository is the PostgreSQL-backed implementation of
// [IdentityRepository] over the "identities" table.
type identityRepository struct {
	*DB
	logger *logger.Logger
}

func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

func scanIdentity(row rowScanner) (models.Identity, error) {
	var identity models.Identity
	err := row.Scan(
		&identity.ID,
		&identity.UserID,
		&identity.Label,
		&identity.Address,
		&identity.AccountID,
		&identity.MailboxPassword.Nonce,
		&identity.MailboxPassword.Ciphertext,
		&identity.MailboxPassword.AuthTag,
		&identity.CreatedAt,
		&identity.ExpiresAt,
	)
	return identity, err
}

func identityLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrIdentityNotFound
	}
	return nil
}

func (i *identityRepository) CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateIdentityQuery(identity)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = i.DB.QueryRowContext(ctx, query, args...).Scan(&identity.CreatedAt); err != nil {
		log.Err(err).Str("func", "identityRepository.CreateIdentity").Int64("user_id", identity.UserID).Msg("failed to insert identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return identity, nil
}

// ListIdentities returns the user's identities that have not expired at now.
func (i *identityRepository) ListIdentities(ctx context.Context, userID int64, now time.Time) ([]models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListIdentitiesQuery(userID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := i.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.ListIdentities").Int64("user_id", userID).Msg("failed to list identities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	identities := make([]models.Identity, 0, 8)
	for rows.Next() {
		identity, scanErr := scanIdentity(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		identities = append(identities, identity)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return identities, nil
}

func (i *identityRepository) GetIdentity(ctx context.Context, userID int64, identityID string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetIdentityQuery(userID, identityID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	identity, err := scanIdentity(i.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if notFound := identityLookupError(err); notFound != nil {
			return models.Identity{}, notFound
		}
		log.Err(err).Str("func", "identityRepository.GetIdentity").Int64("user_id", userID).Msg("failed to get identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return identity, nil
}

func (i *identityRepository) DeleteIdentity(ctx context.Context, userID int64, identityID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteIdentityQuery(userID, identityID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := i.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if notFound := identityLookupError(err); notFound != nil {
			return notFound
		}
		log.Err(err).Str("func", "identityRepository.DeleteIdentity").Int64("user_id", userID).Msg("failed to delete identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrIdentityNotFound
	}

	return nil
}

// DeleteExpired removes every identity whose expiry is at or before now and
// returns how many were removed.
func (i *identityRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredIdentitiesQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := i.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
