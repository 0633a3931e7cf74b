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

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user together with its encryption salt and returns the
// stored row.
//
// A unique_violation on login maps to [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser, user.Login, user.PasswordHash, user.EncryptionSalt).
		Scan(&created.UserID, &created.Login, &created.PasswordHash, &created.EncryptionSalt, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

// FindUserByLogin returns the user with the given login or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, findUserByLogin, login).
		Scan(&found.UserID, &found.Login, &found.PasswordHash, &found.EncryptionSalt, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetEncryptionSalt returns the stored salt of userID. An empty string with a
// nil error means the row exists but carries no salt.
func (r *userRepository) GetEncryptionSalt(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	var salt sql.NullString
	err := r.db.QueryRowContext(ctx, getEncryptionSalt, userID).Scan(&salt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetEncryptionSalt").Int64("user_id", userID).Msg("error selecting salt")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt.String, nil
}
