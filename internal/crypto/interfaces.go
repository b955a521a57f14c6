// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the two security primitives of the authentication
// core: one-way password hashing and signed access tokens.
//
// Both implementations are immutable after construction and safe for
// concurrent use by any number of requests.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"time"

	"github.com/MKhiriev/go-autonav/models"
)

// PasswordHasher produces and verifies one-way salted password hashes.
//
// Hash output is self-describing: the algorithm, its cost parameters and
// the salt are embedded in the string, so verification needs nothing else.
type PasswordHasher interface {
	// Hash returns a fresh hash of plaintext. A new random salt is drawn on
	// every call, so two hashes of the same input never compare equal.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. Malformed or unknown
	// hash strings yield false, never a panic or an error.
	Verify(plaintext, hash string) bool
}

// TokenCodec signs and validates access tokens.
type TokenCodec interface {
	// Encode signs claims with the configured secret and algorithm and sets
	// the expiry to now+ttl.
	Encode(claims models.Claims, ttl time.Duration) (models.Token, error)

	// Decode verifies the signature, algorithm and expiry of token.
	// Every failure is reported as [ErrInvalidToken].
	Decode(token string) (models.Claims, error)
}
