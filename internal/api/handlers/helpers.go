package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
	"github.com/pratik-mahalle/recommendations/internal/pkg/validator"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// decodeBody decodes a single JSON value from the body into an untyped value.
// An empty body decodes to nil so the model can report it as missing data.
func decodeBody(r *http.Request) (interface{}, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()

	var data interface{}
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.BadRequest("Invalid request body").WithDetails(err.Error())
	}
	// exactly one JSON value per body
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.BadRequest("Invalid request body").WithDetails("unexpected data after JSON value")
	}
	return data, nil
}

// parseID reads the {id} URL parameter as a positive integer
func parseID(r *http.Request, val *validator.Validator) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val.ValidateVar(id, "gt=0") != nil {
		return 0, errors.BadRequest("Invalid recommendation ID").
			WithDetails(map[string]interface{}{"id": raw})
	}
	return id, nil
}

// baseURL returns scheme://host of the incoming request
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// writeAppError renders any error through the error envelope
func writeAppError(w http.ResponseWriter, err error) {
	utils.WriteError(w, errors.From(err))
}
