// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSigningAlgorithm: "HS256",
			TokenExpireMinutes:    30,
			CookieName:            "bt",
			PasswordHash: PasswordHash{
				MemoryKiB:   64 * 1024,
				Iterations:  3,
				Parallelism: 2,
			},
			Version:  "v1",
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
	}
}
