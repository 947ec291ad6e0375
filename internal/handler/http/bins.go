package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-client-panel/internal/app"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func (h *Handler) createBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	bin, ok := h.readBin(w, r)
	if !ok {
		return
	}

	if err := h.services.BinService.CreateBin(r.Context(), id, bin); err != nil {
		log.Err(err).Str("func", "*Handler.createBin").Str("bin_id", id).Msg("error creating bin")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	bin, err := h.services.BinService.GetBin(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBin").Str("bin_id", id).Msg("error reading bin")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, bin, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getBin").Msg("error writing response")
	}
}

func (h *Handler) putBin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	bin, ok := h.readBin(w, r)
	if !ok {
		return
	}

	if err := h.services.BinService.PutBin(r.Context(), id, bin); err != nil {
		log.Err(err).Str("func", "*Handler.putBin").Str("bin_id", id).Msg("error overwriting bin")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readBin decodes the request body and answers the request itself when the
// body is too large or malformed.
func (h *Handler) readBin(w http.ResponseWriter, r *http.Request) (models.Bin, bool) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("bin body too large")
			writeError(w, r, ErrBodyTooLarge)
			return models.Bin{}, false
		}
		log.Err(err).Str("func", "*Handler.readBin").Msg("error reading request body")
		writeError(w, r, ErrUnreadableBody)
		return models.Bin{}, false
	}

	bin, err := models.DecodeBin(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.readBin").Msg("invalid bin document")
		writeError(w, r, err)
		return models.Bin{}, false
	}
	return bin, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := app.MsgInternalServerError
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	utils.WriteJSON(w, errorResponse{Error: message, TraceID: traceID}, status)
}
