package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bookmarks/backend/internal/domain/validation"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid JSON payload")

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, fields validation.Errors) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  validation.ErrInvalid.Error(),
		Fields: fields,
	})
}

// decodeJSON reads a single JSON object into dst. An empty body leaves dst
// untouched so that validation reports the missing fields. Unknown fields are
// ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidJSON
	}
	if dec.More() {
		return errInvalidJSON
	}
	return nil
}
