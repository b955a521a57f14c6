// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the account resolved from a validated access token.
// Its lifetime is a single request.
type Principal struct {
	User
}

// NewPrincipal binds a principal to the given account.
func NewPrincipal(user User) Principal {
	return Principal{User: user}
}

// HasRole reports whether the principal holds at least the given role.
func (p Principal) HasRole(role Role) bool {
	return p.Role >= role
}
