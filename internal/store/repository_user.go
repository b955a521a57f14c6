package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/models"
)

var userColumns = []string{
	"id",
	"username",
	"first_name",
	"last_name",
	"email",
	"role",
	"disabled",
	"password_hash",
}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported drivers.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row scanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.Disabled,
		&user.PasswordHash,
	)
	return user, err
}

func (r *userRepository) findOne(ctx context.Context, column, value string) (models.User, error) {
	query := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value})

	var user models.User
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		user, err = scanUser(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "*userRepository.findOne").
				Str("by", column).
				Msg("error looking up user")
		}
		return models.User{}, err
	}

	return user, nil
}

// FindByUsername returns the user with exactly the given username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "username", username)
}

// FindByEmail returns the user with exactly the given email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "email", email)
}

// FindByID returns the user with the given id.
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "id", id)
}

// List returns all users ordered by username.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("username")

	users := make([]models.User, 0)
	err := r.db.queryRows(ctx, query, func(row scanner) error {
		user, err := scanUser(row)
		if err != nil {
			return err
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.List").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// Create persists a new user and returns the stored record.
//
// Unique violations on username or email → [ErrAlreadyExists].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.FirstName, user.LastName, user.Email, user.Role, user.Disabled, user.PasswordHash).
		Suffix(returning(userColumns))

	var created models.User
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		created, err = scanUser(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Str("username", user.Username).Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// Update overwrites every mutable column except the password hash.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("email", user.Email).
		Set("role", user.Role).
		Set("disabled", user.Disabled).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returning(userColumns))

	var updated models.User
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		updated, err = scanUser(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.Update").Str("user_id", user.ID).Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

// UpdateProfile changes names and email. Role, disabled flag and username
// stay as stored, so a concurrent administrative update is not overwritten.
func (r *userRepository) UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (models.User, error) {
	query := r.db.builder.
		Update(models.User{}.TableName()).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("email", email).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns))

	var updated models.User
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		updated, err = scanUser(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateProfile").Str("user_id", id).Msg("error updating profile")
		}
		return models.User{}, err
	}

	return updated, nil
}

// UpdatePassword is a compare-and-swap on password_hash. When no row matches,
// it distinguishes a missing user ([ErrNotFound]) from a concurrent rotation
// ([ErrStalePasswordHash]).
func (r *userRepository) UpdatePassword(ctx context.Context, id, expectedHash, newHash string) error {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(models.User{}.TableName()).
		Set("password_hash", newHash).
		Where(sq.Eq{"id": id, "password_hash": expectedHash})

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Str("user_id", id).Msg("error updating password")
		return err
	}
	if affected == 1 {
		return nil
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}

	log.Warn().Str("func", "*userRepository.UpdatePassword").Str("user_id", id).Msg("password hash changed concurrently")
	return ErrStalePasswordHash
}

// Delete removes the user and returns the deleted record.
func (r *userRepository) Delete(ctx context.Context, id string) (models.User, error) {
	query := r.db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns))

	var deleted models.User
	err := r.db.queryRow(ctx, query, func(row scanner) (err error) {
		deleted, err = scanUser(row)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Delete").Str("user_id", id).Msg("error deleting user")
		}
		return models.User{}, err
	}

	return deleted, nil
}

// returning renders a RETURNING clause. Both PostgreSQL and SQLite (3.35+)
// support it for INSERT, UPDATE and DELETE.
func returning(columns []string) string {
	return fmt.Sprintf("RETURNING %s", strings.Join(columns, ", "))
}
