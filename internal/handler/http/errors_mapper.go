package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
)

type errorStatus struct {
	target error
	status int
	detail string
}

// errorStatuses is ordered: a store failure wraps both service.ErrStore and
// the store cause, so store.ErrTransient must be matched first.
var errorStatuses = []errorStatus{
	{service.ErrInvalidCredentials, http.StatusBadRequest, msgInvalidCredentials},
	{service.ErrAccountDisabled, http.StatusForbidden, msgAccountDisabled},
	{service.ErrUnauthenticated, http.StatusUnauthorized, msgUnauthenticated},
	{service.ErrForbidden, http.StatusForbidden, msgForbidden},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrInvalidID, http.StatusBadRequest, msgInvalidID},
	{service.ErrCannotDeleteSelf, http.StatusBadRequest, msgCannotDeleteSelf},
	{service.ErrPasswordChanged, http.StatusConflict, msgPasswordChanged},
	{utils.ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},

	{store.ErrNotFound, http.StatusNotFound, msgNotFound},
	{store.ErrAlreadyExists, http.StatusConflict, msgAlreadyExists},
	{store.ErrTransient, http.StatusServiceUnavailable, msgUnavailable},
}

// statusFromError returns the HTTP status and client message for err.
// Validation failures are the only errors whose own text reaches the client.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.detail == "" {
			return e.status, err.Error()
		}
		return e.status, e.detail
	}
	return http.StatusInternalServerError, msgInternal
}

// writeError logs err and writes the mapped status with a {"detail": ...}
// body. A 401 carries the bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detail, status)
}
