package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RecommendationService handles recommendation-related API calls
type RecommendationService struct {
	client *Client
}

// RecommendationListOptions contains options for listing recommendations.
// Nil fields are not sent.
type RecommendationListOptions struct {
	Type   *string `json:"type,omitempty"` // default, cross-sell, up-sell, accessory, frequently-together
	Liked  *bool   `json:"liked,omitempty"`
	PID    *int64  `json:"pid,omitempty"`
	Amount *int    `json:"amount,omitempty"`
}

// CreateRecommendationRequest represents a request to create a recommendation
type CreateRecommendationRequest struct {
	PID            int64  `json:"pid"`
	RecommendedPID int64  `json:"recommended_pid"`
	Type           string `json:"type,omitempty"`
	Liked          bool   `json:"liked"`
}

// UpdateRecommendationRequest represents a partial update; nil fields are
// left unchanged on the server
type UpdateRecommendationRequest struct {
	PID            *int64  `json:"pid,omitempty"`
	RecommendedPID *int64  `json:"recommended_pid,omitempty"`
	Type           *string `json:"type,omitempty"`
	Liked          *bool   `json:"liked,omitempty"`
}

func (o *RecommendationListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Type != nil {
		query.Set("type", *o.Type)
	}
	if o.Liked != nil {
		query.Set("liked", strconv.FormatBool(*o.Liked))
	}
	if o.PID != nil {
		query.Set("pid", strconv.FormatInt(*o.PID, 10))
	}
	if o.Amount != nil {
		query.Set("amount", strconv.Itoa(*o.Amount))
	}
	return query
}

// List retrieves recommendations matching the given options, ordered by ID
func (s *RecommendationService) List(ctx context.Context, opts *RecommendationListOptions) ([]Recommendation, error) {
	path := "/recommendations"
	if query := opts.values(); len(query) > 0 {
		path += "?" + query.Encode()
	}

	recommendations := []Recommendation{}
	if err := s.client.doRequest(ctx, "GET", path, nil, &recommendations); err != nil {
		return nil, err
	}

	return recommendations, nil
}

// Get retrieves a single recommendation by ID
func (s *RecommendationService) Get(ctx context.Context, id int64) (*Recommendation, error) {
	var recommendation Recommendation
	if err := s.client.doRequest(ctx, "GET", recommendationPath(id), nil, &recommendation); err != nil {
		return nil, err
	}
	return &recommendation, nil
}

// Create creates a recommendation and returns it with its assigned ID
func (s *RecommendationService) Create(ctx context.Context, req CreateRecommendationRequest) (*Recommendation, error) {
	var recommendation Recommendation
	if err := s.client.doRequest(ctx, "POST", "/recommendations", req, &recommendation); err != nil {
		return nil, err
	}
	return &recommendation, nil
}

// Update applies a partial update to a recommendation
func (s *RecommendationService) Update(ctx context.Context, id int64, req UpdateRecommendationRequest) (*Recommendation, error) {
	var recommendation Recommendation
	if err := s.client.doRequest(ctx, "PUT", recommendationPath(id), req, &recommendation); err != nil {
		return nil, err
	}
	return &recommendation, nil
}

// Like marks a recommendation as liked
func (s *RecommendationService) Like(ctx context.Context, id int64) (*Recommendation, error) {
	var recommendation Recommendation
	if err := s.client.doRequest(ctx, "PUT", recommendationPath(id)+"/like", nil, &recommendation); err != nil {
		return nil, err
	}
	return &recommendation, nil
}

// Unlike clears the liked flag of a recommendation
func (s *RecommendationService) Unlike(ctx context.Context, id int64) (*Recommendation, error) {
	var recommendation Recommendation
	if err := s.client.doRequest(ctx, "PUT", recommendationPath(id)+"/unlike", nil, &recommendation); err != nil {
		return nil, err
	}
	return &recommendation, nil
}

// Delete deletes a recommendation. Deleting a missing recommendation succeeds.
func (s *RecommendationService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", recommendationPath(id), nil, nil)
}

func recommendationPath(id int64) string {
	return fmt.Sprintf("/recommendations/%d", id)
}
