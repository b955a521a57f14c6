package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, msgInvalidCredentials},
		{"account disabled", service.ErrAccountDisabled, http.StatusForbidden, msgAccountDisabled},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, msgUnauthenticated},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, msgForbidden},
		{"invalid id", service.ErrInvalidID, http.StatusBadRequest, msgInvalidID},
		{"self delete", service.ErrCannotDeleteSelf, http.StatusBadRequest, msgCannotDeleteSelf},
		{"password race", service.ErrPasswordChanged, http.StatusConflict, msgPasswordChanged},
		{"bad json", fmt.Errorf("%w: eof", utils.ErrInvalidJSON), http.StatusBadRequest, msgInvalidJSON},
		{"not found", store.ErrNotFound, http.StatusNotFound, msgNotFound},
		{"duplicate", store.ErrAlreadyExists, http.StatusConflict, msgAlreadyExists},
		{
			"transient store failure wins over generic store failure",
			fmt.Errorf("%w: %w", service.ErrStore, store.ErrTransient),
			http.StatusServiceUnavailable, msgUnavailable,
		},
		{"store failure", fmt.Errorf("%w: %w", service.ErrStore, store.ErrExecutingQuery), http.StatusInternalServerError, msgInternal},
		{"unknown error", errors.New("pq: connection refused at 10.0.0.3"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestStatusFromError_ValidationDetailIsExposed(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, fmt.Errorf("%w: email: must be a valid email address", validators.ErrInvalidRequest))

	status, detail := statusFromError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, detail, "email: must be a valid email address")
}

func TestWriteError_BearerChallengeOnlyOn401(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)

	rr := httptest.NewRecorder()
	writeError(rr, req, service.ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	writeError(rr, req, service.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}
