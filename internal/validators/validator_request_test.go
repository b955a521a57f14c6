// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-autonav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateUser() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Role:      models.RoleAdministrator,
		Password:  "s3cret",
	}
}

func ptr(s string) *string { return &s }

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRequestValidator_CreateUser(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(r *models.CreateUserRequest)
		wantField string
	}{
		{name: "valid", mutate: func(r *models.CreateUserRequest) {}},
		{name: "standard role", mutate: func(r *models.CreateUserRequest) { r.Role = models.RoleStandard }},
		{name: "missing username", mutate: func(r *models.CreateUserRequest) { r.Username = "" }, wantField: "username"},
		{name: "missing first name", mutate: func(r *models.CreateUserRequest) { r.FirstName = "" }, wantField: "first_name"},
		{name: "missing last name", mutate: func(r *models.CreateUserRequest) { r.LastName = "" }, wantField: "last_name"},
		{name: "missing email", mutate: func(r *models.CreateUserRequest) { r.Email = "" }, wantField: "email"},
		{name: "malformed email", mutate: func(r *models.CreateUserRequest) { r.Email = "not-an-email" }, wantField: "email"},
		{name: "unknown role", mutate: func(r *models.CreateUserRequest) { r.Role = 7 }, wantField: "role"},
		{name: "missing password", mutate: func(r *models.CreateUserRequest) { r.Password = "" }, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateUser()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestRequestValidator_PointerAndValueAgree(t *testing.T) {
	v := NewRequestValidator()
	req := validCreateUser()
	req.Email = ""

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrInvalidRequest)
	assert.ErrorIs(t, v.Validate(context.Background(), &req), ErrInvalidRequest)
}

func TestRequestValidator_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	req := validCreateUser()
	req.Password = ""

	// password is broken but only email is checked
	assert.NoError(t, v.Validate(context.Background(), req, "email"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "password"), ErrInvalidRequest)
	assert.ErrorIs(t, v.Validate(context.Background(), req, ""), ErrUnknownField)
}

func TestRequestValidator_OtherRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr bool
	}{
		{name: "update user valid", obj: models.UpdateUserRequest{Username: "a", FirstName: "A", LastName: "B", Email: "a@b.io", Disabled: true}},
		{name: "update user bad role", obj: models.UpdateUserRequest{Username: "a", FirstName: "A", LastName: "B", Email: "a@b.io", Role: -1}, wantErr: true},
		{name: "update me valid", obj: &models.UpdateMeRequest{FirstName: "A", LastName: "B", Email: "a@b.io"}},
		{name: "update me bad email", obj: models.UpdateMeRequest{FirstName: "A", LastName: "B", Email: "a@"}, wantErr: true},
		{name: "change password valid", obj: models.ChangeOwnPasswordRequest{CurrentPassword: "x", NewPassword: "y"}},
		{name: "change password missing current", obj: models.ChangeOwnPasswordRequest{NewPassword: "y"}, wantErr: true},
		{name: "set password valid", obj: models.SetPasswordRequest{NewPassword: "y"}},
		{name: "set password empty", obj: models.SetPasswordRequest{}, wantErr: true},
		{name: "tag valid", obj: models.TagRequest{Name: "forklift", Address: "aa:bb"}},
		{name: "tag missing address", obj: models.TagRequest{Name: "forklift"}, wantErr: true},
		{name: "anchor valid", obj: models.AnchorRequest{Name: "north", Address: "01", Height: 2.5}},
		{name: "anchor missing name", obj: models.AnchorRequest{Address: "01"}, wantErr: true},
		{name: "waypoint without name", obj: models.WaypointRequest{PosX: 1}},
		{name: "waypoint with name", obj: models.WaypointRequest{Name: ptr("dock")}},
		{name: "waypoint blank name", obj: models.WaypointRequest{Name: ptr("")}, wantErr: true},
		{name: "position valid", obj: models.TagPositionReport{Address: "aa:bb", PosX: -1}},
		{name: "position missing address", obj: models.TagPositionReport{PosX: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}
