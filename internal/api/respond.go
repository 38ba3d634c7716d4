package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response convention the operator UI expects: ok plus an
// optional error string. Richer responses embed it.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func WriteOK(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, Envelope{OK: true})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{OK: false, Error: message})
}
