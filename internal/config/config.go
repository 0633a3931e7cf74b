// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the server.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session token parameters, the version string and logging
	// settings.
	App App `envPrefix:"APP_"`

	// Crypto holds the key derivation parameters and the server-wide secret
	// key. These values are fixed per deployment: changing the KDF
	// parameters makes every existing vault ciphertext undecryptable.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the disposable mailbox provider client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Crypto holds deployment-wide cryptographic parameters.
type Crypto struct {
	// KDFIterations is the PBKDF2 iteration count.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KDFDigest is the PBKDF2 pseudo-random function: sha256, sha384 or sha512.
	// Env: CRYPTO_KDF_DIGEST
	KDFDigest string `env:"KDF_DIGEST"`

	// KeyLength is the derived key length in bytes. Only 32 is accepted.
	// Env: CRYPTO_KEY_LENGTH
	KeyLength int `env:"KEY_LENGTH"`

	// MaxConcurrentDerivations bounds how many key derivations may run at
	// once, so that a burst of vault reads cannot occupy every CPU.
	// Env: CRYPTO_MAX_CONCURRENT_DERIVATIONS
	MaxConcurrentDerivations int `env:"MAX_CONCURRENT_DERIVATIONS"`

	// ServerSecretKey is the base64-encoded 32-byte key that protects
	// server-recoverable secrets such as disposable mailbox passwords.
	// Env: CRYPTO_SERVER_SECRET_KEY
	ServerSecretKey string `env:"SERVER_SECRET_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks the session cookie as Secure (HTTPS only).
	// Env: SERVER_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// Adapter holds configuration for the disposable mailbox provider.
type Adapter struct {
	// MailboxAddress is the base URL of the mailbox provider API.
	// Env: ADAPTER_MAILBOX_ADDRESS
	MailboxAddress string `env:"MAILBOX_ADDRESS"`

	// RequestTimeout bounds every outbound provider call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often expired identities are removed.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// IdentityTTL is the lifetime of a newly created disposable identity.
	// Env: WORKERS_IDENTITY_TTL
	IdentityTTL time.Duration `env:"IDENTITY_TTL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
