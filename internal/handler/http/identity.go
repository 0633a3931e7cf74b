// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

func (h *Handler) createIdentity(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateIdentityRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadJSON(w, r, err)
			return
		}
	}

	identity, err := h.services.IdentityService.CreateIdentity(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, identity, http.StatusCreated)
}

func (h *Handler) listIdentities(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	identities, err := h.services.IdentityService.ListIdentities(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if identities == nil {
		identities = []models.Identity{}
	}

	_, _ = utils.WriteJSON(w, identities, http.StatusOK)
}

func (h *Handler) getIdentityCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	creds, err := h.services.IdentityService.GetCredentials(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	noStore(w)
	_, _ = utils.WriteJSON(w, creds, http.StatusOK)
}

func (h *Handler) deleteIdentity(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.IdentityService.DeleteIdentity(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
