// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type value returned by the token endpoint.
const TokenTypeBearer = "bearer"

// Claims is the fixed set of values signed into an access token.
//
// Only the registered claims below are ever read; unknown fields present in
// a token payload are ignored and can not influence authorization decisions.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims returns claims for the given subject (username).
func NewClaims(subject string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

// Token is a signed access token together with its expiry.
type Token struct {
	// SignedString is the compact, URL-safe JWS representation
	// (header.payload.signature).
	SignedString string

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time

	// TTL is the lifetime the token was issued with. Cookie max-age is
	// derived from it so that both representations expire together.
	TTL time.Duration
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
