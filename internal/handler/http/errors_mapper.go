// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/adapter"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/service"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/store"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMasterPasswordRequired:  http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrWrongMasterPassword:     http.StatusUnauthorized,
	service.ErrFieldNotSet:             http.StatusNotFound,
	service.ErrEncryptionSaltMissing:   http.StatusInternalServerError,
	service.ErrKeyUnavailable:          http.StatusInternalServerError,
	service.ErrCorruptedSecret:         http.StatusInternalServerError,
	service.ErrSecretEncryption:        http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,
	store.ErrIdentityNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrNoActiveDomains:     http.StatusBadGateway,
	adapter.ErrProviderUnavailable: http.StatusBadGateway,
	adapter.ErrRateLimited:         http.StatusServiceUnavailable,
	adapter.ErrConflict:            http.StatusBadGateway,
	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrUnprocessable:       http.StatusBadGateway,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
}

// statusFromError returns the HTTP status for err and the sentinel it
// matched, or nil when nothing matched.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes a JSON error. 4xx responses carry the
// matched sentinel's message, or the full validation message for invalid
// input; everything else gets the generic status text, so wrapped internal
// detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	message := http.StatusText(status)
	switch {
	case target == service.ErrInvalidDataProvided:
		message = err.Error()
	case status < http.StatusInternalServerError && target != nil:
		message = target.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
