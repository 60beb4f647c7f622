package utils

import (
	"encoding/json"
	"net/http"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteCreated writes a 201 response pointing at the new resource
func WriteCreated(w http.ResponseWriter, location string, data interface{}) error {
	w.Header().Set("Location", location)
	return WriteJSON(w, http.StatusCreated, data)
}

// WriteNoContent writes an empty response with the given status
func WriteNoContent(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// WriteError writes an error JSON response from AppError
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	return WriteJSON(w, err.StatusCode, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    err.Code,
			Message: err.Message,
			Details: err.Details,
		},
	})
}
