package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/utils"
)

// withPositionSignature checks the body signature of position reports.
// Without a configured key every report passes unchanged.
func (h *Handler) withPositionSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.positionSigner == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxFormBytes))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withPositionSignature").Msg("failed to read request body")
			utils.WriteError(w, msgInternal, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.SignatureHeader)
		if signature == "" {
			log.Info().Err(ErrMissingSignature).Msg("position report rejected")
			utils.WriteError(w, msgIntegrityCheck, http.StatusBadRequest)
			return
		}
		if !h.positionSigner.Verify(body, signature) {
			log.Info().Err(ErrInvalidSignature).Msg("position report rejected")
			utils.WriteError(w, msgIntegrityCheck, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
