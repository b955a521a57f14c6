package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-autonav/models"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// Login resolves identifier as a username, then as an email, and checks
	// the password. It returns [ErrInvalidCredentials] for an unknown
	// identifier or a wrong password and [ErrAccountDisabled] for a disabled
	// account, regardless of the password.
	Login(ctx context.Context, identifier, password string) (models.User, error)

	// IssueToken signs a token whose subject is the user's username.
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
}

// GuardService is the authorization gate every protected operation passes.
type GuardService interface {
	// Authenticate decodes the bearer token and resolves its subject to a
	// live account.
	Authenticate(ctx context.Context, token string) (models.Principal, error)

	// RequireRole returns [ErrForbidden] unless the principal holds role.
	RequireRole(principal models.Principal, role models.Role) error
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id string, request models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, principal models.Principal, id string) (models.User, error)

	// SetPassword replaces another user's password without knowing the old one.
	SetPassword(ctx context.Context, id string, request models.SetPasswordRequest) (models.User, error)

	UpdateMe(ctx context.Context, principal models.Principal, request models.UpdateMeRequest) (models.User, error)

	// ChangeOwnPassword requires the current password of the principal.
	ChangeOwnPassword(ctx context.Context, principal models.Principal, request models.ChangeOwnPasswordRequest) (models.User, error)
}

type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	Get(ctx context.Context, id string) (models.Tag, error)
	Create(ctx context.Context, request models.TagRequest) (models.Tag, error)
	Update(ctx context.Context, id string, request models.TagRequest) (models.Tag, error)
	Delete(ctx context.Context, id string) (models.Tag, error)

	// ReportPosition records a hardware position report for the tag with the
	// reported address.
	ReportPosition(ctx context.Context, report models.TagPositionReport) (models.Tag, error)
}

type AnchorService interface {
	List(ctx context.Context) ([]models.Anchor, error)
	Get(ctx context.Context, id string) (models.Anchor, error)
	Create(ctx context.Context, request models.AnchorRequest) (models.Anchor, error)
	Update(ctx context.Context, id string, request models.AnchorRequest) (models.Anchor, error)
	UpdatePosition(ctx context.Context, id string, request models.PositionRequest) (models.Anchor, error)
	Delete(ctx context.Context, id string) (models.Anchor, error)
}

type WaypointService interface {
	List(ctx context.Context) ([]models.Waypoint, error)
	Get(ctx context.Context, id string) (models.Waypoint, error)
	Create(ctx context.Context, request models.WaypointRequest) (models.Waypoint, error)
	Update(ctx context.Context, id string, request models.WaypointRequest) (models.Waypoint, error)
	UpdatePosition(ctx context.Context, id string, request models.PositionRequest) (models.Waypoint, error)
	Delete(ctx context.Context, id string) (models.Waypoint, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
