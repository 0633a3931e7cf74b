// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

const (
	// DefaultKDFIterations is the PBKDF2 iteration count used when none is
	// configured.
	DefaultKDFIterations = 210_000

	// DefaultKDFDigest is the PBKDF2 digest used when none is configured.
	DefaultKDFDigest = "sha512"

	// DefaultKeyLength is the derived key length in bytes (AES-256).
	DefaultKeyLength = 32

	// MinKDFIterations is the lowest iteration count accepted at startup.
	MinKDFIterations = 100_000
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "prevauth",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
			LogLevel:      "info",
		},
		Crypto: Crypto{
			KDFIterations:            DefaultKDFIterations,
			KDFDigest:                DefaultKDFDigest,
			KeyLength:                DefaultKeyLength,
			MaxConcurrentDerivations: runtime.NumCPU(),
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			MailboxAddress: "https://api.mail.tm",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SweepInterval: 10 * time.Minute,
			IdentityTTL:   7 * 24 * time.Hour,
		},
	}
}
