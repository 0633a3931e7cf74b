// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns vault entries and disposable
// identities.
//
// The account password authenticates the user; it is unrelated to the vault
// master password, which never reaches storage.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext account password on register and login
	// requests only. It is cleared as soon as it has been hashed or compared.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// EncryptionSalt is the base64-encoded per-user salt used to derive vault
	// keys from the master password. It is generated once at registration and
	// never changes afterwards.
	EncryptionSalt string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
