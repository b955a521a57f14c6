package http

import (
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.TagService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.services.TagService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var request models.TagRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.services.TagService.Create(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	var request models.TagRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.services.TagService.Update(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.services.TagService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

// reportPosition handles POST /position, sent by the positioning hardware.
// It is not behind bearer auth; see withPositionSignature.
func (h *Handler) reportPosition(w http.ResponseWriter, r *http.Request) {
	var report models.TagPositionReport
	if err := utils.DecodeJSON(r, &report); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.services.TagService.ReportPosition(r.Context(), report)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}
