// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	s, err := RandomString(12)
	require.NoError(t, err)
	assert.Len(t, s, 12)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(lowerAlnum, r))
	}

	other, err := RandomString(12)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestGeneratePassword(t *testing.T) {
	p, err := GeneratePassword(20)
	require.NoError(t, err)
	assert.Len(t, p, 20)
	for _, r := range p {
		assert.True(t, strings.ContainsRune(passwordChars, r))
	}
}

func TestRandom_InvalidLength(t *testing.T) {
	_, err := RandomString(0)
	assert.Error(t, err)
	_, err = GeneratePassword(-1)
	assert.Error(t, err)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}
