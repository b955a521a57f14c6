package http

import (
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listWaypoints(w http.ResponseWriter, r *http.Request) {
	waypoints, err := h.services.WaypointService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoints, http.StatusOK)
}

func (h *Handler) getWaypoint(w http.ResponseWriter, r *http.Request) {
	waypoint, err := h.services.WaypointService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoint, http.StatusOK)
}

func (h *Handler) createWaypoint(w http.ResponseWriter, r *http.Request) {
	var request models.WaypointRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	waypoint, err := h.services.WaypointService.Create(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoint, http.StatusCreated)
}

func (h *Handler) updateWaypoint(w http.ResponseWriter, r *http.Request) {
	var request models.WaypointRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	waypoint, err := h.services.WaypointService.Update(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoint, http.StatusOK)
}

func (h *Handler) updateWaypointPosition(w http.ResponseWriter, r *http.Request) {
	var request models.PositionRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	waypoint, err := h.services.WaypointService.UpdatePosition(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoint, http.StatusOK)
}

func (h *Handler) deleteWaypoint(w http.ResponseWriter, r *http.Request) {
	waypoint, err := h.services.WaypointService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, waypoint, http.StatusOK)
}
