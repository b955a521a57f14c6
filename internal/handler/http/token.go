package http

import (
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
)

// issueToken handles POST /token. The form-encoded username (or email) and
// password are checked by the auth service; on success the token is returned
// in the body and mirrored into an HttpOnly cookie with the same lifetime.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		log.Debug().Err(err).Msg("unreadable token form")
		utils.WriteError(w, "Invalid form was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.tokenCookie(token))
	w.Header().Set("Cache-Control", "no-store")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func (h *Handler) tokenCookie(token models.Token) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

const maxFormBytes = 64 << 10
