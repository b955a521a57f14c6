// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request signature check on POST /position.
var (
	// ErrMissingSignature is returned when a position report arrives without
	// the HashSHA256 header while a signing key is configured.
	ErrMissingSignature = errors.New("missing `HashSHA256` header")

	// ErrInvalidSignature is returned when the HashSHA256 header is not valid
	// hex or does not match the HMAC of the request body.
	ErrInvalidSignature = errors.New("request signature does not match body")
)

// Client-facing messages. They deliberately carry no detail about which
// check failed.
const (
	msgInvalidCredentials = "Incorrect username or password"
	msgAccountDisabled    = "Inactive user"
	msgUnauthenticated    = "Could not validate credentials"
	msgForbidden          = "The user doesn't have enough privileges"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidID          = "Invalid identifier"
	msgCannotDeleteSelf   = "Users cannot delete themselves"
	msgNotFound           = "Not found"
	msgAlreadyExists      = "Already exists"
	msgPasswordChanged    = "Password was changed concurrently, retry"
	msgUnavailable        = "Service temporarily unavailable"
	msgInternal           = "Internal Server Error"
	msgIntegrityCheck     = "Integrity check failed"
)

const defaultCookieName = "bt"
