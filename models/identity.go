// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is a disposable mailbox generated for a user. The mailbox
// password is encrypted under the server-wide key so the server can hand it
// back without the user's master password.
type Identity struct {
	ID        string `json:"id"`
	UserID    int64  `json:"-"`
	Label     string `json:"label"`
	Address   string `json:"address"`
	AccountID string `json:"-"`

	MailboxPassword CipherField `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateIdentityRequest is the body of a disposable identity creation request.
type CreateIdentityRequest struct {
	Label string `json:"label"`
}

// IdentityCredentials is the decrypted login of a disposable mailbox.
type IdentityCredentials struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Mailbox is an account created at the disposable mailbox provider.
type Mailbox struct {
	AccountID string `json:"id"`
	Address   string `json:"address"`
}
