// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtCodec is a [TokenCodec] producing HMAC-signed JWTs.
//
// The codec pins a single algorithm: tokens whose header names any other
// algorithm, including "none", are rejected before the signature is checked.
type jwtCodec struct {
	secret []byte
	method jwt.SigningMethod
	issuer string

	// now is the clock used both for issuing and for validating tokens.
	now func() time.Time
}

// NewTokenCodec constructs a [TokenCodec] from the token settings in cfg.
func NewTokenCodec(cfg config.App) (TokenCodec, error) {
	return newTokenCodec(cfg, time.Now)
}

func newTokenCodec(cfg config.App, now func() time.Time) (*jwtCodec, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrEmptySecret
	}

	var method jwt.SigningMethod
	switch cfg.TokenSigningAlgorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		method = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.TokenSigningAlgorithm)
	}

	return &jwtCodec{
		secret: []byte(cfg.TokenSignKey),
		method: method,
		issuer: cfg.TokenIssuer,
		now:    now,
	}, nil
}

// Encode implements [TokenCodec].
func (c *jwtCodec) Encode(claims models.Claims, ttl time.Duration) (models.Token, error) {
	if ttl <= 0 {
		return models.Token{}, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := c.now().Truncate(time.Second)
	expiresAt := now.Add(ttl)

	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	if c.issuer != "" {
		claims.Issuer = c.issuer
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		ExpiresAt:    expiresAt,
		TTL:          ttl,
	}, nil
}

// Decode implements [TokenCodec].
func (c *jwtCodec) Decode(token string) (models.Claims, error) {
	if token == "" {
		return models.Claims{}, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	var claims models.Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, c.keyFunc, opts...)
	if err != nil || !parsed.Valid {
		return models.Claims{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return models.Claims{}, ErrInvalidToken
	}

	return claims, nil
}

func (c *jwtCodec) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return c.secret, nil
}
