// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

var supportedDigests = []string{"sha256", "sha384", "sha512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every violated group is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if err := cfg.Crypto.validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.MailboxAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SweepInterval <= 0 || cfg.Workers.IdentityTTL <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

func (c Crypto) validate() error {
	if c.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: kdf iterations must be at least %d", ErrInvalidCryptoConfigs, MinKDFIterations)
	}

	if !isSupportedDigest(c.KDFDigest) {
		return fmt.Errorf("%w: unsupported kdf digest %q", ErrInvalidCryptoConfigs, c.KDFDigest)
	}

	if c.KeyLength != DefaultKeyLength {
		return fmt.Errorf("%w: key length must be %d bytes", ErrInvalidCryptoConfigs, DefaultKeyLength)
	}

	if c.MaxConcurrentDerivations < 1 {
		return fmt.Errorf("%w: at least one concurrent derivation is required", ErrInvalidCryptoConfigs)
	}

	// the key itself is decoded and length-checked by the server cipher
	if strings.TrimSpace(c.ServerSecretKey) == "" {
		return fmt.Errorf("%w: server secret key is not set", ErrInvalidCryptoConfigs)
	}

	return nil
}

func isSupportedDigest(digest string) bool {
	digest = strings.ToLower(digest)
	for _, d := range supportedDigests {
		if d == digest {
			return true
		}
	}
	return false
}
