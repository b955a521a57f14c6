// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var supportedSigningAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}

	if !slices.Contains(supportedSigningAlgorithms, cfg.App.TokenSigningAlgorithm) {
		return fmt.Errorf("%w: unsupported signing algorithm %q", ErrInvalidAppConfigs, cfg.App.TokenSigningAlgorithm)
	}

	if cfg.App.TokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: token expire minutes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHash.MemoryKiB == 0 || cfg.App.PasswordHash.Iterations == 0 || cfg.App.PasswordHash.Parallelism == 0 {
		return fmt.Errorf("%w: password hash parameters must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}
