package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON answers with data encoded as JSON under statusCode and returns
// the number of body bytes written. Responses carry Cache-Control: no-store.
//
// When data cannot be encoded the client gets a plain 500 and the encoding
// error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode json response: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
