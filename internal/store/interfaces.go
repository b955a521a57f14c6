package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-autonav/models"
)

// UserRepository is the credential store. Usernames and emails are unique
// and compared exactly as stored.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)

	Create(ctx context.Context, user models.User) (models.User, error)

	// Update overwrites the profile, role and disabled flag of the user with
	// user.ID. The password hash is left untouched.
	Update(ctx context.Context, user models.User) (models.User, error)

	// UpdateProfile changes only the self-service fields of the user.
	UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (models.User, error)

	// UpdatePassword replaces the password hash of the user only if the
	// stored hash still equals expectedHash. The check and the write are a
	// single statement.
	UpdatePassword(ctx context.Context, id, expectedHash, newHash string) error

	Delete(ctx context.Context, id string) (models.User, error)
}

type TagRepository interface {
	FindByID(ctx context.Context, id string) (models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag models.Tag) (models.Tag, error)
	Update(ctx context.Context, tag models.Tag) (models.Tag, error)

	// ReportPosition stores the position reported by the tag with the given
	// hardware address and stamps its last contact time.
	ReportPosition(ctx context.Context, address string, posX, posY float64, at time.Time) (models.Tag, error)

	Delete(ctx context.Context, id string) (models.Tag, error)
}

type AnchorRepository interface {
	FindByID(ctx context.Context, id string) (models.Anchor, error)
	List(ctx context.Context) ([]models.Anchor, error)
	Create(ctx context.Context, anchor models.Anchor) (models.Anchor, error)
	Update(ctx context.Context, anchor models.Anchor) (models.Anchor, error)
	UpdatePosition(ctx context.Context, id string, posX, posY float64) (models.Anchor, error)
	Delete(ctx context.Context, id string) (models.Anchor, error)
}

type WaypointRepository interface {
	FindByID(ctx context.Context, id string) (models.Waypoint, error)
	List(ctx context.Context) ([]models.Waypoint, error)
	Create(ctx context.Context, waypoint models.Waypoint) (models.Waypoint, error)
	Update(ctx context.Context, waypoint models.Waypoint) (models.Waypoint, error)
	UpdatePosition(ctx context.Context, id string, posX, posY float64) (models.Waypoint, error)
	Delete(ctx context.Context, id string) (models.Waypoint, error)
}
