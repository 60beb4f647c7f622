package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, errors.ValidationError("Invalid Recommendation: missing pid", map[string]string{"field": "pid"}))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Error.Code != errors.ErrCodeValidation {
		t.Errorf("code = %s", body.Error.Code)
	}
	if body.Error.Message != "Invalid Recommendation: missing pid" {
		t.Errorf("message = %s", body.Error.Message)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, map[string]int{"id": 3})

	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d", rr.Code)
	}
	var body map[string]int
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["id"] != 3 {
		t.Errorf("id = %d", body["id"])
	}
}

func TestWriteCreated(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteCreated(rr, "http://localhost:8080/recommendations/3", map[string]int{"id": 3})

	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "http://localhost:8080/recommendations/3" {
		t.Errorf("Location = %q", loc)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}
