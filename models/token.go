// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a signed session JWT.
//
// SignedString is the compact serialized form sent to clients in the
// Authorization header and the session cookie. UserID is the parsed "sub"
// claim, filled in after validation.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
