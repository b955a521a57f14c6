package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/models"
)

// dummyPassword is hashed once at construction. Logins for unknown
// identifiers are verified against that hash so that they cost the same as
// logins for existing accounts.
const dummyPassword = "autonav-timing-equalizer"

// authService is the concrete implementation of AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	codec          crypto.TokenCodec

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// dummyHash is a real hash in the current format, never matching any
	// password a client can guess.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the credential store,
// the password hasher and the token codec.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	codec crypto.TokenCodec,
	tokenTTL time.Duration,
	logger *logger.Logger,
) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		codec:          codec,
		tokenTTL:       tokenTTL,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Login authenticates a user by username or email.
//
// The password is always verified, against the dummy hash when the
// identifier is unknown. A disabled account is reported as
// [ErrAccountDisabled] whatever the password, so the response never tells
// whether the password of a disabled account was right.
func (a *authService) Login(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, found, err := a.lookup(ctx, identifier)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("credential lookup failed")
		return models.User{}, storeError(err)
	}

	hash := a.dummyHash
	if found {
		hash = user.PasswordHash
	}
	passwordMatches := a.hasher.Verify(password, hash) && found

	if found && user.Disabled {
		log.Info().Str("user_id", user.ID).Msg("login attempt for disabled account")
		return models.User{}, ErrAccountDisabled
	}

	if !passwordMatches {
		log.Info().Bool("known_identifier", found).Msg("login rejected")
		return models.User{}, ErrInvalidCredentials
	}

	log.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user logged in")
	return user, nil
}

// lookup resolves identifier as a username first and as an email second.
func (a *authService) lookup(ctx context.Context, identifier string) (models.User, bool, error) {
	if identifier == "" {
		return models.User{}, false, nil
	}

	user, err := a.userRepository.FindByUsername(ctx, identifier)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, false, err
	}

	user, err = a.userRepository.FindByEmail(ctx, identifier)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, false, err
	}

	return models.User{}, false, nil
}

// IssueToken signs a token for user with the configured lifetime.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.codec.Encode(models.NewClaims(user.Username), a.tokenTTL)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.IssueToken").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
