package web

// errors.go maps every operation failure to the one envelope shape clients
// consume: {"error": <failure text>, "message": <operation context>}.
//
// Unlike the historical backend, failures are split into two classes at the
// status-code level: bad input (ValidationError, 400) and system failure
// (everything else, 500). The envelope shape is identical for both.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinicdesk/clinic-api/internal/clinic"
	"github.com/clinicdesk/clinic-api/internal/logging"
)

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError logs the technical failure with the request ID and writes the
// envelope. context is the caller-supplied operation description, e.g.
// "Failed to retrieve patient details".
func respondError(w http.ResponseWriter, r *http.Request, err error, context string) {
	status := http.StatusInternalServerError
	var ve *clinic.ValidationError
	if errors.As(err, &ve) {
		status = http.StatusBadRequest
	}

	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
		"context", context,
	)

	writeEnvelope(w, status, err.Error(), context)
}

// writeEnvelope writes the failure envelope with the given status.
func writeEnvelope(w http.ResponseWriter, status int, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: errText, Message: message})
}

// writeJSON encodes v as JSON with a 200 status. Encoding errors are logged
// since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// writeMessage writes the {"message": ...} success body the write endpoints
// return.
func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]string{"message": message})
}
