// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/prevauth")
	t.Setenv("CRYPTO_SERVER_SECRET_KEY", testServerKey)
}

// ── GetStructuredConfig ──

func TestGetStructuredConfig_DefaultsAndEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "prevauth", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultKDFIterations, cfg.Crypto.KDFIterations)
	assert.Equal(t, DefaultKDFDigest, cfg.Crypto.KDFDigest)
	assert.Equal(t, DefaultKeyLength, cfg.Crypto.KeyLength)
	assert.GreaterOrEqual(t, cfg.Crypto.MaxConcurrentDerivations, 1)
	assert.Equal(t, testServerKey, cfg.Crypto.ServerSecretKey)
	assert.Equal(t, "postgres://localhost/prevauth", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CRYPTO_KDF_ITERATIONS", "300000")

	cfg, err := GetStructuredConfig([]string{
		"-a", "127.0.0.1:9090",
		"-kdf-iterations", "400000",
		"-kdf-digest", "sha256",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 400000, cfg.Crypto.KDFIterations)
	assert.Equal(t, "sha256", cfg.Crypto.KDFDigest)
}

func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_duration": "2h", "version": "1.2.3"},
		"crypto": {"kdf_iterations": 500000, "max_concurrent_derivations": 2},
		"workers": {"sweep_interval": "1m", "identity_ttl": "48h"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := GetStructuredConfig([]string{"-c", path, "-kdf-iterations", "400000"})
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 500000, cfg.Crypto.KDFIterations)
	assert.Equal(t, 2, cfg.Crypto.MaxConcurrentDerivations)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
	assert.Equal(t, 48*time.Hour, cfg.Workers.IdentityTTL)
}

func TestGetStructuredConfig_MissingServerKeyIsFatal(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/prevauth")
	t.Setenv("CRYPTO_SERVER_SECRET_KEY", "")

	cfg, err := GetStructuredConfig(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrInvalidCryptoConfigs))
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := GetStructuredConfig([]string{"-config", filepath.Join(t.TempDir(), "absent.json")})
	require.Error(t, err)
}

func TestGetStructuredConfig_UnknownFlag(t *testing.T) {
	setRequiredEnv(t)

	_, err := GetStructuredConfig([]string{"-no-such-flag"})
	require.Error(t, err)
}

// ── validate ──

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign-key"
	cfg.Storage.DB.DSN = "postgres://localhost/prevauth"
	cfg.Crypto.ServerSecretKey = testServerKey
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "no token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "too few iterations",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.KDFIterations = 1000 },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "unsupported digest",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.KDFDigest = "md5" },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "wrong key length",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.KeyLength = 16 },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "no derivation slots",
			mutate:  func(cfg *StructuredConfig) { cfg.Crypto.MaxConcurrentDerivations = 0 },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "no dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no mailbox address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.MailboxAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SweepInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DigestIsCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Crypto.KDFDigest = "SHA512"
	assert.NoError(t, cfg.validate())
}

// ── NetAddress ──

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "host and port", input: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "localhost", input: "localhost:9000", want: "localhost:9000"},
		{name: "empty host", input: ":8080", want: ":8080"},
		{name: "no port", input: "127.0.0.1", wantErr: true},
		{name: "port out of range", input: "127.0.0.1:70000", wantErr: true},
		{name: "non numeric port", input: "127.0.0.1:http", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

// ── Duration ──

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
