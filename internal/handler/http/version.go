package http

import (
	"net/http"

	"github.com/MKhiriev/go-client-panel/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, healthResponse{Status: "ok", Version: serverVersion}, http.StatusOK)
}
