package http

import (
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that resolves the bearer token of the request
// to a principal.
//
// It reads the "Authorization: Bearer <token>" header, hands the token to
// [service.GuardService.Authenticate] and, on success, stores the principal
// in the request context under [utils.PrincipalCtxKey]. The request logger
// is enriched with the principal's user_id.
//
// A missing or malformed header and every token failure are answered with
// 401 and the same generic message. A valid token of a disabled account is
// answered with 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("no usable bearer token")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		principal, err := h.services.GuardService.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", principal.ID)
		})

		ctx := utils.WithPrincipal(log.WithContext(r.Context()), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole returns a middleware that lets the request through only if the
// principal placed in the context by [Handler.auth] holds at least role.
// It runs before the handler, so a rejected request has no side effects.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				writeError(w, r, service.ErrUnauthenticated)
				return
			}

			if err := h.services.GuardService.RequireRole(principal, role); err != nil {
				logger.FromRequest(r).Info().
					Str("required_role", role.String()).
					Str("role", principal.Role.String()).
					Msg("role gate rejected request")
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// principalFrom returns the principal of an authenticated request.
func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, service.ErrUnauthenticated
	}
	return principal, nil
}
