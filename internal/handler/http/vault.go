// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, r, err)
		return
	}

	entry, err := h.services.VaultService.CreateEntry(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.VaultService.ListEntries(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	entry, err := h.services.VaultService.GetEntry(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, r, err)
		return
	}
	req.EntryID = chi.URLParam(r, "id")

	entry, err := h.services.VaultService.UpdateEntry(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.VaultService.DeleteEntry(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// revealField returns the plaintext of exactly one secret field.
func (h *Handler) revealField(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.RevealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadJSON(w, r, err)
		return
	}
	req.EntryID = chi.URLParam(r, "id")

	resp, err := h.services.VaultService.RevealField(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	noStore(w)
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
