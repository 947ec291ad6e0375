package http

import "net/http"

// withBodyLimit caps the request body at limits.MaxBodyBytes. Reads past the
// cap fail with [http.MaxBytesError], which handlers answer with 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limits.MaxBodyBytes <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > h.limits.MaxBodyBytes {
			writeError(w, r, ErrBodyTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
