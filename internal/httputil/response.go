package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape of every API response
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondJSON writes a JSON response with the given status code.
// The payload is marshaled before headers are sent so an encoding failure
// still produces a well-formed 500.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondData writes a success envelope wrapping data
func RespondData(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, Envelope{Success: true, Data: data})
}

// RespondError writes a failure envelope carrying message
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(Envelope{Success: false, Error: message})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
