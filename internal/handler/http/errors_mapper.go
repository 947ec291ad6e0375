package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/models"
)

var errorStatusMap = map[error]int{
	ErrBodyTooLarge:    http.StatusRequestEntityTooLarge,
	ErrUnreadableBody:  http.StatusBadRequest,
	ErrTooManyRequests: http.StatusTooManyRequests,

	models.ErrInvalidBin:      http.StatusBadRequest,
	service.ErrInvalidBinID:   http.StatusBadRequest,
	service.ErrEmptyBinData:   http.StatusBadRequest,
	store.ErrBinAlreadyExists: http.StatusConflict,
	store.ErrBinNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
