// Package httpjson holds the request/response JSON helpers the API
// handlers share: body decoding with sane limits, a success writer, and
// the single error envelope every failure path uses.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; every API payload here is tiny.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON error envelope: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// Decode reads a JSON body into dst. It rejects bodies over 1 MiB and
// trailing garbage after the first JSON value.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second value after the payload means a malformed request.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, errorResponse{Error: message})
}

// InternalError writes the generic 500 envelope. Handlers log the real
// error; clients only see this.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
