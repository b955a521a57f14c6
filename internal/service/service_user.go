package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/internal/validators"
	"github.com/MKhiriev/go-autonav/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	ids            IDGenerator

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids IDGenerator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		ids:            ids,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	if !utils.IsValidUUID(id) {
		return models.User{}, ErrInvalidID
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, storeError(err)
	}
	return user, nil
}

// Create hashes the initial password and stores the new account.
func (s *userService) Create(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Role:         request.Role,
		Disabled:     request.Disabled,
		PasswordHash: hash,
	}

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return models.User{}, storeError(err)
	}

	log.Info().Str("user_id", created.ID).Str("role", created.Role.String()).Msg("user created")
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, request models.UpdateUserRequest) (models.User, error) {
	if !utils.IsValidUUID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.userRepository.Update(ctx, models.User{
		ID:        id,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Role:      request.Role,
		Disabled:  request.Disabled,
	})
	if err != nil {
		return models.User{}, storeError(err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", updated.ID).
		Str("role", updated.Role.String()).
		Bool("disabled", updated.Disabled).
		Msg("user updated")
	return updated, nil
}

// Delete removes another user's account. An administrator can not delete
// their own account.
func (s *userService) Delete(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	if !utils.IsValidUUID(id) {
		return models.User{}, ErrInvalidID
	}
	if _, err := s.userRepository.FindByID(ctx, id); err != nil {
		return models.User{}, storeError(err)
	}
	if id == principal.ID {
		return models.User{}, ErrCannotDeleteSelf
	}

	deleted, err := s.userRepository.Delete(ctx, id)
	if err != nil {
		return models.User{}, storeError(err)
	}

	logger.FromContext(ctx).Info().Str("user_id", deleted.ID).Msg("user deleted")
	return deleted, nil
}

func (s *userService) SetPassword(ctx context.Context, id string, request models.SetPasswordRequest) (models.User, error) {
	if !utils.IsValidUUID(id) {
		return models.User{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, storeError(err)
	}

	return s.rotatePassword(ctx, user, request.NewPassword)
}

func (s *userService) UpdateMe(ctx context.Context, principal models.Principal, request models.UpdateMeRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.userRepository.UpdateProfile(ctx, principal.ID, request.FirstName, request.LastName, request.Email)
	if err != nil {
		return models.User{}, storeError(err)
	}
	return updated, nil
}

// ChangeOwnPassword verifies the current password against the hash read by
// the authorization lookup of this request and swaps in the new hash only if
// that hash is still stored.
func (s *userService) ChangeOwnPassword(ctx context.Context, principal models.Principal, request models.ChangeOwnPasswordRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !s.hasher.Verify(request.CurrentPassword, principal.PasswordHash) {
		logger.FromContext(ctx).Info().Str("user_id", principal.ID).Msg("password change rejected: wrong current password")
		return models.User{}, ErrInvalidCredentials
	}

	return s.rotatePassword(ctx, principal.User, request.NewPassword)
}

// rotatePassword replaces user's password hash only if the stored hash is
// still the one user was read with, and returns the updated account.
func (s *userService) rotatePassword(ctx context.Context, user models.User, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*userService.rotatePassword").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, user.ID, user.PasswordHash, newHash)
	switch {
	case errors.Is(err, store.ErrStalePasswordHash):
		return models.User{}, ErrPasswordChanged
	case err != nil:
		return models.User{}, storeError(err)
	}

	log.Info().Str("user_id", user.ID).Msg("password changed")

	user.PasswordHash = newHash
	return user, nil
}
