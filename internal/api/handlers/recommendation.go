package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pratik-mahalle/recommendations/internal/api/dto"
	"github.com/pratik-mahalle/recommendations/internal/domain/recommendation"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
	"github.com/pratik-mahalle/recommendations/internal/pkg/validator"
)

type RecommendationHandler struct {
	service   recommendation.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewRecommendationHandler(service recommendation.Service, log *logger.Logger, val *validator.Validator) *RecommendationHandler {
	return &RecommendationHandler{service: service, logger: log, validator: val}
}

// List returns recommendations, optionally filtered
// @Summary List recommendations
// @Description Filter by type and liked in storage, then by pid, then keep the first amount
// @Tags Recommendations
// @Produce json
// @Param type query string false "Recommendation type"
// @Param liked query bool false "Liked flag"
// @Param pid query int false "Source product id"
// @Param amount query int false "Maximum number of results"
// @Success 200 {array} dto.RecommendationDTO "List of recommendations"
// @Failure 400 {object} utils.ErrorResponse "Invalid filter"
// @Router /recommendations [get]
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := recommendation.ParseListQuery(r.URL.Query())
	if err != nil {
		writeAppError(w, err)
		return
	}

	recs, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list recommendations")
		writeAppError(w, err)
		return
	}

	h.logger.Debugf("Returning %d recommendations", len(recs))
	utils.WriteJSON(w, http.StatusOK, dto.FromRecommendations(recs))
}

// Get returns a single recommendation by ID
// @Summary Get recommendation by ID
// @Tags Recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.RecommendationDTO "Recommendation details"
// @Failure 404 {object} utils.ErrorResponse "Recommendation not found"
// @Router /recommendations/{id} [get]
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, h.validator)
	if err != nil {
		writeAppError(w, err)
		return
	}

	rec, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.FromRecommendation(rec))
}

// Create creates a new recommendation
// @Summary Create recommendation
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Recommendation"
// @Success 201 {object} dto.RecommendationDTO "Recommendation created"
// @Header 201 {string} Location "URL of the new recommendation"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 415 {object} utils.ErrorResponse "Content-Type must be application/json"
// @Router /recommendations [post]
func (h *RecommendationHandler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var rec recommendation.Recommendation
	if err := rec.Deserialize(data); err != nil {
		writeAppError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), &rec)
	if err != nil {
		writeAppError(w, err)
		return
	}

	utils.WriteCreated(w, fmt.Sprintf("%s/recommendations/%d", baseURL(r), created.ID), dto.FromRecommendation(created))
}

// Update replaces the fields present in the body
// @Summary Update recommendation
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param request body dto.RecommendationRequest true "Fields to update"
// @Success 200 {object} dto.RecommendationDTO "Recommendation updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 404 {object} utils.ErrorResponse "Recommendation not found"
// @Failure 415 {object} utils.ErrorResponse "Content-Type must be application/json"
// @Router /recommendations/{id} [put]
func (h *RecommendationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, h.validator)
	if err != nil {
		writeAppError(w, err)
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	rec, err := h.service.Update(r.Context(), id, data)
	if err != nil {
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.FromRecommendation(rec))
}

// Delete removes a recommendation
// @Summary Delete recommendation
// @Tags Recommendations
// @Param id path int true "Recommendation ID"
// @Success 204 "Recommendation deleted or absent"
// @Router /recommendations/{id} [delete]
func (h *RecommendationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, h.validator)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeAppError(w, err)
		return
	}

	utils.WriteNoContent(w, http.StatusNoContent)
}

// Like marks a recommendation as liked
// @Summary Like recommendation
// @Tags Recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.RecommendationDTO "Recommendation liked"
// @Failure 404 {object} utils.ErrorResponse "Recommendation not found"
// @Router /recommendations/{id}/like [put]
func (h *RecommendationHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.Like)
}

// Unlike clears the liked flag
// @Summary Unlike recommendation
// @Tags Recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.RecommendationDTO "Recommendation unliked"
// @Failure 404 {object} utils.ErrorResponse "Recommendation not found"
// @Router /recommendations/{id}/unlike [put]
func (h *RecommendationHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.Unlike)
}

type toggleFunc func(ctx context.Context, id int64) (*recommendation.Recommendation, error)

func (h *RecommendationHandler) toggle(w http.ResponseWriter, r *http.Request, fn toggleFunc) {
	id, err := parseID(r, h.validator)
	if err != nil {
		writeAppError(w, err)
		return
	}

	rec, err := fn(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.FromRecommendation(rec))
}
