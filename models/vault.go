// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecretField names one encrypted attribute of a vault entry.
type SecretField string

const (
	// FieldPassword is the required password of a vault entry.
	FieldPassword SecretField = "password"

	// FieldNotes is the optional free-form notes of a vault entry.
	FieldNotes SecretField = "notes"
)

// Valid reports whether f belongs to the closed set of secret fields.
func (f SecretField) Valid() bool {
	return f == FieldPassword || f == FieldNotes
}

// Category is the plaintext grouping label of a vault entry.
type Category string

const (
	CategoryLogin   Category = "login"
	CategorySocial  Category = "social"
	CategoryFinance Category = "finance"
	CategoryEmail   Category = "email"
	CategoryWork    Category = "work"
	CategoryOther   Category = "other"
)

// Categories is the exhaustive list of accepted categories.
var Categories = []Category{
	CategoryLogin,
	CategorySocial,
	CategoryFinance,
	CategoryEmail,
	CategoryWork,
	CategoryOther,
}

// VaultEntry is one stored credential. Name, Username, URL and Category are
// plaintext metadata; Password and Notes are encrypted under a key derived
// from the owner's master password and are never serialized to clients.
type VaultEntry struct {
	ID       string   `json:"id"`
	UserID   int64    `json:"-"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	URL      string   `json:"url"`
	Category Category `json:"category"`

	// HasNotes reports whether a notes CipherField exists for the entry.
	HasNotes bool `json:"has_notes"`

	Password CipherField  `json:"-"`
	Notes    *CipherField `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEntryRequest is the body of a vault entry creation request.
type CreateEntryRequest struct {
	Name     string   `json:"name"`
	Username string   `json:"username"`
	URL      string   `json:"url"`
	Category Category `json:"category"`

	// Password is the plaintext secret to encrypt. Required.
	Password string `json:"password"`

	// Notes is the optional plaintext notes. A nil value stores no notes
	// field at all, which differs from storing an empty string.
	Notes *string `json:"notes,omitempty"`

	MasterPassword string `json:"master_password"`
}

// UpdateEntryRequest is a partial update of a vault entry. Nil fields are
// left untouched. Changing Password or Notes requires MasterPassword.
type UpdateEntryRequest struct {
	EntryID string `json:"-"`

	Name     *string   `json:"name,omitempty"`
	Username *string   `json:"username,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Category *Category `json:"category,omitempty"`

	Password *string `json:"password,omitempty"`
	Notes    *string `json:"notes,omitempty"`

	// ClearNotes removes the notes field entirely. It cannot be combined
	// with Notes.
	ClearNotes bool `json:"clear_notes,omitempty"`

	MasterPassword string `json:"master_password,omitempty"`
}

// ChangesSecrets reports whether the update touches an encrypted field.
func (r UpdateEntryRequest) ChangesSecrets() bool {
	return r.Password != nil || r.Notes != nil
}

// IsEmpty reports whether the update changes nothing.
func (r UpdateEntryRequest) IsEmpty() bool {
	return r.Name == nil && r.Username == nil && r.URL == nil && r.Category == nil &&
		!r.ChangesSecrets() && !r.ClearNotes
}

// VaultEntryUpdate is the storage-level form of an update: secrets already
// encrypted, ownership carried explicitly.
type VaultEntryUpdate struct {
	ID     string
	UserID int64

	Name     *string
	Username *string
	URL      *string
	Category *Category

	Password   *CipherField
	Notes      *CipherField
	ClearNotes bool
}

// RevealRequest asks for the plaintext of exactly one secret field.
type RevealRequest struct {
	EntryID        string      `json:"-"`
	Field          SecretField `json:"field"`
	MasterPassword string      `json:"master_password"`
}

// RevealResponse carries the plaintext of the requested field.
type RevealResponse struct {
	Field SecretField `json:"field"`
	Value string      `json:"value"`
}
