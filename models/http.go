// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Disabled  bool   `json:"disabled"`

	// Password is the plaintext initial password. It is hashed by the
	// service layer and dropped afterwards.
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /users/{id}.
// Every field overwrites the stored value.
type UpdateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Disabled  bool   `json:"disabled"`
}

// UpdateMeRequest is the body of PATCH /users/me.
type UpdateMeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ChangeOwnPasswordRequest is the body of POST /users/me/password.
type ChangeOwnPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// SetPasswordRequest is the body of POST /users/{id}/password.
type SetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// TagRequest is the body of POST /tags and PATCH /tags/{id}.
type TagRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AnchorRequest is the body of POST /anchors and PATCH /anchors/{id}.
type AnchorRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Height  float64 `json:"height"`
	PosX    float64 `json:"pos_x"`
	PosY    float64 `json:"pos_y"`
}

// WaypointRequest is the body of POST /waypoints and PATCH /waypoints/{id}.
type WaypointRequest struct {
	Name *string `json:"name"`
	PosX float64 `json:"pos_x"`
	PosY float64 `json:"pos_y"`
}

// PositionRequest is the body of PATCH /anchors/{id}/position and
// PATCH /waypoints/{id}/position.
type PositionRequest struct {
	PosX float64 `json:"pos_x"`
	PosY float64 `json:"pos_y"`
}

// TagPositionReport is the body of POST /position sent by the positioning
// hardware. The tag is identified by its hardware address.
type TagPositionReport struct {
	Address string  `json:"address"`
	PosX    float64 `json:"pos_x"`
	PosY    float64 `json:"pos_y"`
}
