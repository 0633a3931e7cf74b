// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Nested groups resolve their
// variables through envPrefix, so CRYPTO_KDF_ITERATIONS lands in
// Crypto.KDFIterations. Unset variables leave fields at their zero value and
// are filled by defaults during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvConfig, err)
	}

	return nil
}
