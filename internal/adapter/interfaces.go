// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the positioning backend's HTTP
// API, as used by hardware gateways and the tag simulator.
//
// The primary abstraction is [PositioningAdapter], which decouples callers
// from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPPositioningAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-autonav/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PositioningAdapter defines transport-agnostic communication with the
// positioning backend.
type PositioningAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges username (or email) and password for an access token
	// through the form-encoded POST /token endpoint and stores the token via
	// SetToken.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ReportPosition sends a tag position to POST /position. The body is
	// signed when the adapter was built with a position key. Returns
	// [ErrNotFound] (wrapped) when no tag has the reported address.
	ReportPosition(ctx context.Context, report models.TagPositionReport) (models.Tag, error)

	// Version returns the API version reported by GET /version.
	Version(ctx context.Context) (string, error)
}
