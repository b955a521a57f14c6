// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the privilege level of a user account.
// It is serialized as an integer: 0 for standard users, 1 for administrators.
type Role int

const (
	// RoleStandard may read tags, anchors and waypoints and manage its own profile.
	RoleStandard Role = 0

	// RoleAdministrator may additionally manage users and all positioning entities.
	RoleAdministrator Role = 1
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdministrator:
		return true
	default:
		return false
	}
}

// String returns a human-readable role name used in logs.
func (r Role) String() string {
	switch r {
	case RoleStandard:
		return "standard"
	case RoleAdministrator:
		return "administrator"
	default:
		return "unknown"
	}
}

// User represents an account of the administrative console.
// It is the record owned by the credential store and used for
// authentication and authorization.
type User struct {
	// ID is the opaque UUID of the account. Immutable once created.
	ID string `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// FirstName is the given name of the account owner.
	FirstName string `json:"first_name"`

	// LastName is the family name of the account owner.
	LastName string `json:"last_name"`

	// Email is unique and accepted as an alternate login identifier.
	Email string `json:"email"`

	// Role is the privilege level of the account.
	Role Role `json:"role"`

	// Disabled accounts can neither log in nor use previously issued tokens.
	Disabled bool `json:"disabled"`

	// PasswordHash is the self-describing output of the password hasher.
	// It is never serialized and never logged.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdministrator reports whether the user holds the administrator role.
func (u User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
