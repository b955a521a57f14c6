package http

import (
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAnchors(w http.ResponseWriter, r *http.Request) {
	anchors, err := h.services.AnchorService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchors, http.StatusOK)
}

func (h *Handler) getAnchor(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.services.AnchorService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusOK)
}

func (h *Handler) createAnchor(w http.ResponseWriter, r *http.Request) {
	var request models.AnchorRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	anchor, err := h.services.AnchorService.Create(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusCreated)
}

func (h *Handler) updateAnchor(w http.ResponseWriter, r *http.Request) {
	var request models.AnchorRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	anchor, err := h.services.AnchorService.Update(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusOK)
}

func (h *Handler) updateAnchorPosition(w http.ResponseWriter, r *http.Request) {
	var request models.PositionRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	anchor, err := h.services.AnchorService.UpdatePosition(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusOK)
}

func (h *Handler) deleteAnchor(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.services.AnchorService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, anchor, http.StatusOK)
}
