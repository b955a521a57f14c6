// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// Rules are declared with github.com/go-ozzo/ozzo-validation; only presence
// and format are checked here. Uniqueness of usernames, emails, tag and
// anchor names and hardware addresses is enforced by the store's unique
// constraints.
package validators

import "context"

// Validator validates a request payload. When fields are given, only the
// rules of those fields are evaluated.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}
