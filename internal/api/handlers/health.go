package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/pratik-mahalle/recommendations/internal/api/dto"
	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
)

const (
	serviceName    = "Recommendation REST API Service"
	serviceVersion = "1.0"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

var _ Pinger = (*sql.DB)(nil)

// HealthHandler handles health check requests
type HealthHandler struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: log,
	}
}

// Index describes the service
// @Summary Service metadata
// @Tags Health
// @Produce json
// @Success 200 {object} dto.IndexResponse "Service name, version and resource URL"
// @Router / [get]
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, dto.IndexResponse{
		Name:    serviceName,
		Version: serviceVersion,
		Paths:   baseURL(r) + "/recommendations",
	})
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, dto.HealthResponse{Status: "OK"})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check if the application is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} dto.ReadinessResponse "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// Check database connection
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.ErrorWithErr(err, "Database ping failed")
		utils.WriteError(w, errors.ServiceUnavailable("Database connection failed"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ReadinessResponse{
		Status:   "ready",
		Database: "connected",
	})
}
