package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-autonav/models"
)

// RequestValidator checks the bodies of the HTTP API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate implements [Validator]. When fields are given, only violations of
// those fields (by JSON name) are reported.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.CreateUserRequest:
		err = validateCreateUser(value)
	case *models.CreateUserRequest:
		err = validateCreateUser(*value)

	case models.UpdateUserRequest:
		err = validateUpdateUser(value)
	case *models.UpdateUserRequest:
		err = validateUpdateUser(*value)

	case models.UpdateMeRequest:
		err = validateUpdateMe(value)
	case *models.UpdateMeRequest:
		err = validateUpdateMe(*value)

	case models.ChangeOwnPasswordRequest:
		err = validateChangeOwnPassword(value)
	case *models.ChangeOwnPasswordRequest:
		err = validateChangeOwnPassword(*value)

	case models.SetPasswordRequest:
		err = validateSetPassword(value)
	case *models.SetPasswordRequest:
		err = validateSetPassword(*value)

	case models.TagRequest:
		err = validateTag(value)
	case *models.TagRequest:
		err = validateTag(*value)

	case models.AnchorRequest:
		err = validateAnchor(value)
	case *models.AnchorRequest:
		err = validateAnchor(*value)

	case models.WaypointRequest:
		err = validateWaypoint(value)
	case *models.WaypointRequest:
		err = validateWaypoint(*value)

	case models.TagPositionReport:
		err = validatePositionReport(value)
	case *models.TagPositionReport:
		err = validatePositionReport(*value)

	default:
		return ErrUnsupportedType
	}

	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if len(fields) > 0 {
		filtered, err := onlyFields(errs, fields)
		if err != nil {
			return err
		}
		if len(filtered) == 0 {
			return nil
		}
		errs = filtered
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, errs)
}

func onlyFields(errs validation.Errors, fields []string) (validation.Errors, error) {
	filtered := validation.Errors{}
	for _, f := range fields {
		if f == "" {
			return nil, ErrUnknownField
		}
		if e, ok := errs[f]; ok {
			filtered[f] = e
		}
	}
	return filtered, nil
}

var roleRule = validation.In(models.RoleStandard, models.RoleAdministrator).Error("must be 0 (standard) or 1 (administrator)")

func validateCreateUser(r models.CreateUserRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, roleRule),
		validation.Field(&r.Password, validation.Required),
	)
}

func validateUpdateUser(r models.UpdateUserRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Role, roleRule),
	)
}

func validateUpdateMe(r models.UpdateMeRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

func validateChangeOwnPassword(r models.ChangeOwnPasswordRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
	)
}

func validateSetPassword(r models.SetPasswordRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewPassword, validation.Required),
	)
}

func validateTag(r models.TagRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Address, validation.Required),
	)
}

func validateAnchor(r models.AnchorRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Address, validation.Required),
	)
}

// waypoint names are optional, but an explicitly sent name must not be blank
func validateWaypoint(r models.WaypointRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
	)
}

func validatePositionReport(r models.TagPositionReport) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required),
	)
}
