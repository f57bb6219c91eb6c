// Package respond writes points-mall envelopes for the dev backend.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xinfuli/points-mall/internal/types"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteEnvelope writes env with HTTP 200. Business failures travel in-band.
func WriteEnvelope[T any](w http.ResponseWriter, env *types.Envelope[T]) {
	WriteJSON(w, http.StatusOK, env)
}

// WriteFailure reports a business failure: HTTP 200 with a non-200 envelope code.
func WriteFailure(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, http.StatusOK, types.Failure(code, message))
}

// WriteBadRequest reports invalid caller input in-band with code 400.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusBadRequest, message)
}

// WriteError writes a failure envelope with a matching HTTP status.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, types.Failure(statusCode, message))
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 Internal Server Error response
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
