package handlers

import (
	"encoding/json"
	"net/http"
)

// FieldError is one field-level validation violation, returned in the
// "errors" array of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

func respondValidationError(w http.ResponseWriter, errs []FieldError) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid input", Errors: errs})
}
