// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lowerAlnum    = "abcdefghijklmnopqrstuvwxyz0123456789"
	passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*-_"
)

// RandomString returns n characters drawn uniformly from lowercase letters
// and digits. It is used for mailbox local parts.
func RandomString(n int) (string, error) {
	return randomFrom(lowerAlnum, n)
}

// GeneratePassword returns a random password of length n drawn from letters,
// digits and symbols.
func GeneratePassword(n int) (string, error) {
	return randomFrom(passwordChars, n)
}

func randomFrom(alphabet string, n int) (string, error) {
	if n <= 0 {
		return "", errors.New("length must be positive")
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}

	return string(out), nil
}
