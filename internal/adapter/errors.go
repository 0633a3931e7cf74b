// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("provider rejected request")
	ErrUnauthorized        = errors.New("provider unauthorized")
	ErrNotFound            = errors.New("provider resource not found")
	ErrConflict            = errors.New("provider resource already exists")
	ErrUnprocessable       = errors.New("provider could not process request")
	ErrRateLimited         = errors.New("provider rate limit exceeded")
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNoActiveDomains is returned when the provider lists no domain that
	// accepts new mailboxes.
	ErrNoActiveDomains = errors.New("provider has no active domains")
)
