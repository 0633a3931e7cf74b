// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party services the server
// depends on.
//
// [MailboxAdapter] talks to a disposable mailbox provider exposing a
// mail.tm-compatible REST API. Provider HTTP statuses are mapped to the
// sentinel errors in errors.go by mapHTTPError so callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MailboxAdapter creates disposable mailboxes at an external provider.
type MailboxAdapter interface {
	// Domains returns the active domains new mailboxes may be created on.
	Domains(ctx context.Context) ([]string, error)

	// CreateMailbox registers address with password and returns the
	// provider's account record.
	CreateMailbox(ctx context.Context, address, password string) (models.Mailbox, error)
}
