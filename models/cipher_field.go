// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherField is the persisted form of one encrypted value: the GCM nonce,
// the ciphertext and the authentication tag, each base64-encoded and stored
// in its own column.
//
// Every write produces a brand-new CipherField; rows are never patched in
// place, so a nonce is never reused under the same key.
type CipherField struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	AuthTag    string `json:"auth_tag"`
}

// IsZero reports whether no component of the field is set, which is how an
// attribute that was never assigned a value is represented.
//
// An encrypted empty string is not zero: it still carries a nonce and a tag.
func (c CipherField) IsZero() bool {
	return c.Nonce == "" && c.Ciphertext == "" && c.AuthTag == ""
}
