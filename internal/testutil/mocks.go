package testutil

import (
	"context"
	"sort"

	"github.com/pratik-mahalle/recommendations/internal/domain/recommendation"
)

// MockRecommendationRepository is a mock implementation of recommendation.Repository
type MockRecommendationRepository struct {
	Recommendations map[int64]*recommendation.Recommendation
	NextID          int64
	CreateError     error
	GetError        error
	UpdateError     error
	DeleteError     error
	ListError       error

	// ListCalls records every filter passed to List
	ListCalls []recommendation.Filter
}

func NewMockRecommendationRepository() *MockRecommendationRepository {
	return &MockRecommendationRepository{
		Recommendations: make(map[int64]*recommendation.Recommendation),
		NextID:          1,
	}
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *recommendation.Recommendation) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	id := m.NextID
	m.NextID++
	stored := *rec
	stored.ID = id
	m.Recommendations[id] = &stored
	return id, nil
}

func (m *MockRecommendationRepository) GetByID(ctx context.Context, id int64) (*recommendation.Recommendation, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	rec, ok := m.Recommendations[id]
	if !ok {
		return nil, recommendation.NotFoundError(id)
	}
	out := *rec
	return &out, nil
}

func (m *MockRecommendationRepository) Update(ctx context.Context, rec *recommendation.Recommendation) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Recommendations[rec.ID]; !ok {
		return recommendation.NotFoundError(rec.ID)
	}
	stored := *rec
	m.Recommendations[rec.ID] = &stored
	return nil
}

func (m *MockRecommendationRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Recommendations, id)
	return nil
}

func (m *MockRecommendationRepository) SetLiked(ctx context.Context, id int64, liked bool) (*recommendation.Recommendation, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	rec, ok := m.Recommendations[id]
	if !ok {
		return nil, recommendation.NotFoundError(id)
	}
	rec.Liked = liked
	out := *rec
	return &out, nil
}

func (m *MockRecommendationRepository) List(ctx context.Context, filter recommendation.Filter) ([]*recommendation.Recommendation, error) {
	m.ListCalls = append(m.ListCalls, filter)
	if m.ListError != nil {
		return nil, m.ListError
	}

	ids := make([]int64, 0, len(m.Recommendations))
	for id := range m.Recommendations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*recommendation.Recommendation, 0, len(ids))
	for _, id := range ids {
		rec := m.Recommendations[id]
		if filter.Matches(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}
