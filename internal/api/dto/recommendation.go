package dto

import "github.com/pratik-mahalle/recommendations/internal/domain/recommendation"

// RecommendationDTO represents a recommendation in API responses
type RecommendationDTO struct {
	ID             int64  `json:"id"`
	PID            int64  `json:"pid"`
	RecommendedPID int64  `json:"recommended_pid"`
	Type           string `json:"type"`
	Liked          bool   `json:"liked"`
}

// FromRecommendation converts a domain recommendation into its response shape
func FromRecommendation(rec *recommendation.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		ID:             rec.ID,
		PID:            rec.PID,
		RecommendedPID: rec.RecommendedPID,
		Type:           string(rec.Type),
		Liked:          rec.Liked,
	}
}

// FromRecommendations converts a list, never returning nil
func FromRecommendations(recs []*recommendation.Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, len(recs))
	for i, rec := range recs {
		out[i] = FromRecommendation(rec)
	}
	return out
}

// RecommendationRequest documents the create and update body. Handlers decode
// into an untyped value so that missing and mistyped fields can be told apart.
type RecommendationRequest struct {
	PID            int64  `json:"pid" example:"100"`
	RecommendedPID int64  `json:"recommended_pid" example:"200"`
	Type           string `json:"type,omitempty" example:"cross-sell"`
	Liked          bool   `json:"liked,omitempty"`
}

// IndexResponse is the body of the root endpoint
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

// HealthResponse is the body of the liveness endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of the readiness endpoint
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
