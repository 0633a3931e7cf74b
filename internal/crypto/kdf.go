// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sync/semaphore"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
)

var digests = map[string]func() hash.Hash{
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// KeyDeriver turns a master password and a per-user salt into a [Key] with
// PBKDF2. Its parameters are fixed for the lifetime of a deployment: a key
// derived with other parameters will not decrypt existing data.
//
// Derivation is CPU-bound. At most cfg.MaxConcurrentDerivations derivations
// run at once; further callers wait for a free slot.
type KeyDeriver struct {
	iterations int
	keyLen     int
	digest     func() hash.Hash
	slots      *semaphore.Weighted
}

// NewKeyDeriver validates cfg and returns a ready [KeyDeriver].
func NewKeyDeriver(cfg config.Crypto) (*KeyDeriver, error) {
	digest, ok := digests[strings.ToLower(cfg.KDFDigest)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported digest %q", ErrKeyDerivation, cfg.KDFDigest)
	}
	if cfg.KDFIterations < 1 {
		return nil, fmt.Errorf("%w: iteration count must be positive", ErrKeyDerivation)
	}
	if cfg.KeyLength != KeySize {
		return nil, fmt.Errorf("%w: key length must be %d bytes", ErrInvalidKey, KeySize)
	}
	if cfg.MaxConcurrentDerivations < 1 {
		return nil, fmt.Errorf("%w: at least one derivation slot is required", ErrKeyDerivation)
	}

	return &KeyDeriver{
		iterations: cfg.KDFIterations,
		keyLen:     cfg.KeyLength,
		digest:     digest,
		slots:      semaphore.NewWeighted(int64(cfg.MaxConcurrentDerivations)),
	}, nil
}

// Derive returns the key for password and the base64-encoded salt. The same
// inputs always produce the same key.
//
// ctx bounds only the wait for a derivation slot. A derivation that has
// started runs to completion; if ctx was cancelled meanwhile the key is
// destroyed and the context error is returned.
func (d *KeyDeriver) Derive(ctx context.Context, password, saltEncoded string) (Key, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrKeyDerivation)
	}
	if saltEncoded == "" {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}

	salt, err := base64.StdEncoding.DecodeString(saltEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: salt is not valid base64", ErrKeyDerivation)
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", ErrKeyDerivation, MinSaltSize)
	}

	if err = d.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: waiting for derivation slot: %w", ErrKeyDerivation, err)
	}
	defer d.slots.Release(1)

	pw := []byte(password)
	key := Key(pbkdf2.Key(pw, salt, d.iterations, d.keyLen, d.digest))
	clear(pw)

	if len(key) != d.keyLen {
		key.Destroy()
		return nil, fmt.Errorf("%w: unexpected output length", ErrKeyDerivation)
	}

	if err = ctx.Err(); err != nil {
		key.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	return key, nil
}
