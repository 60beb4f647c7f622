package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pratik-mahalle/recommendations/docs"
	"github.com/pratik-mahalle/recommendations/internal/api/handlers"
	"github.com/pratik-mahalle/recommendations/internal/api/middleware"
	"github.com/pratik-mahalle/recommendations/internal/config"
	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/metrics"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
	"github.com/pratik-mahalle/recommendations/web"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Recommendation *handlers.RecommendationHandler
}

// New builds the HTTP handler. Background work started here (rate limiter
// sweeping) stops when ctx is cancelled.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.New(errors.ErrCodeNotFound, "Resource not found", http.StatusNotFound).
			WithDetails(map[string]interface{}{"path": r.URL.Path}))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.MethodNotAllowed("Method "+r.Method+" not allowed on "+r.URL.Path))
	})

	// Service endpoints
	r.Get("/", h.Health.Index)
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Admin UI
	r.Method(http.MethodGet, "/static", http.RedirectHandler("/static/", http.StatusMovedPermanently))
	r.Method(http.MethodGet, "/static/*", http.StripPrefix("/static/", web.Static()))

	// Recommendations
	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/", h.Recommendation.List)
		r.With(middleware.RequireContentType("application/json")).Post("/", h.Recommendation.Create)
		r.Get("/{id}", h.Recommendation.Get)
		r.With(middleware.RequireContentType("application/json")).Put("/{id}", h.Recommendation.Update)
		r.Delete("/{id}", h.Recommendation.Delete)
		r.Put("/{id}/like", h.Recommendation.Like)
		r.Put("/{id}/unlike", h.Recommendation.Unlike)
	})

	return r
}
