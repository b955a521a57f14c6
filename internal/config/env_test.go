// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":            "jwt_secret",
		"APP_TOKEN_SIGNING_ALGORITHM":   "HS512",
		"APP_TOKEN_EXPIRE_MINUTES":      "15",
		"APP_TOKEN_ISSUER":              "autonav",
		"APP_COOKIE_NAME":               "session",
		"APP_PASSWORD_HASH_MEMORY_KIB":  "32768",
		"APP_PASSWORD_HASH_ITERATIONS":  "4",
		"APP_PASSWORD_HASH_PARALLELISM": "1",
		"APP_VERSION":                   "v2",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:autonav.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "HS512", cfg.App.TokenSigningAlgorithm)
	assert.Equal(t, 15, cfg.App.TokenExpireMinutes)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenTTL())
	assert.Equal(t, "autonav", cfg.App.TokenIssuer)
	assert.Equal(t, "session", cfg.App.CookieName)
	assert.Equal(t, uint32(32768), cfg.App.PasswordHash.MemoryKiB)
	assert.Equal(t, uint32(4), cfg.App.PasswordHash.Iterations)
	assert.Equal(t, uint8(1), cfg.App.PasswordHash.Parallelism)
	assert.Equal(t, "v2", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:autonav.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidMinutes(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_EXPIRE_MINUTES": "half an hour",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_SIGNING_ALGORITHM",
		"APP_TOKEN_EXPIRE_MINUTES",
		"APP_TOKEN_ISSUER",
		"APP_COOKIE_NAME",
		"APP_PASSWORD_HASH_MEMORY_KIB",
		"APP_PASSWORD_HASH_ITERATIONS",
		"APP_PASSWORD_HASH_PARALLELISM",
		"APP_VERSION",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_GRPC_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
