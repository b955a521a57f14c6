package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/models"
)

// guardService resolves bearer tokens to principals and enforces role gates.
//
// Disabling an account takes effect on the next request: tokens are not
// revoked, but every request re-reads the account behind the token.
type guardService struct {
	userRepository store.UserRepository
	codec          crypto.TokenCodec

	logger *logger.Logger
}

// NewGuardService returns a [GuardService] that resolves bearer tokens with codec and accounts with userRepository.
func NewGuardService(userRepository store.UserRepository, codec crypto.TokenCodec, logger *logger.Logger) GuardService {
	return &guardService{
		userRepository: userRepository,
		codec:          codec,
		logger:         logger,
	}
}

// Authenticate implements [GuardService]. Decoding failures of any kind and
// unknown subjects yield [ErrUnauthenticated]; a disabled account yields
// [ErrAccountDisabled].
func (g *guardService) Authenticate(ctx context.Context, token string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	claims, err := g.codec.Decode(token)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Principal{}, ErrUnauthenticated
	}

	user, err := g.userRepository.FindByUsername(ctx, claims.Subject)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Info().Str("subject", claims.Subject).Msg("token subject no longer exists")
		return models.Principal{}, ErrUnauthenticated
	case err != nil:
		log.Err(err).Str("func", "*guardService.Authenticate").Msg("principal lookup failed")
		return models.Principal{}, storeError(err)
	}

	if user.Disabled {
		log.Info().Str("user_id", user.ID).Msg("request with token of disabled account")
		return models.Principal{}, ErrAccountDisabled
	}

	return models.NewPrincipal(user), nil
}

// RequireRole implements [GuardService].
func (g *guardService) RequireRole(principal models.Principal, role models.Role) error {
	if principal.ID == "" {
		return ErrUnauthenticated
	}
	if principal.Disabled {
		return ErrAccountDisabled
	}
	if !principal.HasRole(role) {
		return ErrForbidden
	}
	return nil
}
