package services

import (
	"context"

	"github.com/pratik-mahalle/recommendations/internal/domain/recommendation"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/metrics"
)

// RecommendationService implements recommendation.Service
type RecommendationService struct {
	repo   recommendation.Repository
	logger *logger.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(repo recommendation.Repository, log *logger.Logger) recommendation.Service {
	return &RecommendationService{
		repo:   repo,
		logger: log,
	}
}

// Create stores a new recommendation and returns it with the assigned id
func (s *RecommendationService) Create(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	rec.ID = 0

	id, err := s.repo.Create(ctx, rec)
	metrics.RecordRecommendationOperation("create", err)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to create recommendation")
		return nil, err
	}

	created := *rec
	created.ID = id

	s.logger.WithFields(map[string]interface{}{
		"recommendation_id": id,
		"pid":               created.PID,
		"recommended_pid":   created.RecommendedPID,
		"type":              created.Type,
	}).Info("Recommendation created")

	return &created, nil
}

// GetByID retrieves a recommendation by ID
func (s *RecommendationService) GetByID(ctx context.Context, id int64) (*recommendation.Recommendation, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a full or partial update to an existing recommendation
func (s *RecommendationService) Update(ctx context.Context, id int64, data interface{}) (*recommendation.Recommendation, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rec.Merge(data); err != nil {
		return nil, err
	}
	rec.ID = id

	err = s.repo.Update(ctx, rec)
	metrics.RecordRecommendationOperation("update", err)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to update recommendation")
		return nil, err
	}

	s.logger.With("recommendation_id", id).Info("Recommendation updated")
	return rec, nil
}

// Delete deletes a recommendation. Missing ids are not an error.
func (s *RecommendationService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	metrics.RecordRecommendationOperation("delete", err)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete recommendation")
		return err
	}

	s.logger.With("recommendation_id", id).Info("Recommendation deleted")
	return nil
}

// Like marks a recommendation as liked
func (s *RecommendationService) Like(ctx context.Context, id int64) (*recommendation.Recommendation, error) {
	return s.setLiked(ctx, "like", id, true)
}

// Unlike clears the liked flag
func (s *RecommendationService) Unlike(ctx context.Context, id int64) (*recommendation.Recommendation, error) {
	return s.setLiked(ctx, "unlike", id, false)
}

func (s *RecommendationService) setLiked(ctx context.Context, op string, id int64, liked bool) (*recommendation.Recommendation, error) {
	rec, err := s.repo.SetLiked(ctx, id, liked)
	metrics.RecordRecommendationOperation(op, err)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"recommendation_id": id,
		"liked":             liked,
	}).Debug("Recommendation liked flag changed")

	return rec, nil
}

// List selects the base set by type and liked, then narrows it by pid and
// truncates it to amount
func (s *RecommendationService) List(ctx context.Context, q recommendation.ListQuery) ([]*recommendation.Recommendation, error) {
	var (
		recs []*recommendation.Recommendation
		err  error
	)
	if q.HasAttributes() {
		recs, err = s.FindByAttributes(ctx, q.Type, q.Liked)
	} else {
		recs, err = s.FindAll(ctx)
	}
	metrics.RecordRecommendationOperation("list", err)
	if err != nil {
		return nil, err
	}

	out := q.Narrow(recs)
	metrics.ObserveListSize(len(out))
	return out, nil
}

// FindAll returns every recommendation
func (s *RecommendationService) FindAll(ctx context.Context) ([]*recommendation.Recommendation, error) {
	return s.repo.List(ctx, recommendation.Filter{})
}

// FindByPID returns the recommendations for a product
func (s *RecommendationService) FindByPID(ctx context.Context, pid int64) ([]*recommendation.Recommendation, error) {
	return s.repo.List(ctx, recommendation.Filter{PID: &pid})
}

// FindByType returns the recommendations of one type
func (s *RecommendationService) FindByType(ctx context.Context, t recommendation.Type) ([]*recommendation.Recommendation, error) {
	return s.repo.List(ctx, recommendation.Filter{Type: &t})
}

// FindByLiked returns the recommendations with the given liked flag
func (s *RecommendationService) FindByLiked(ctx context.Context, liked bool) ([]*recommendation.Recommendation, error) {
	return s.repo.List(ctx, recommendation.Filter{Liked: &liked})
}

// FindByAttributes ANDs whichever of recType and liked are set
func (s *RecommendationService) FindByAttributes(ctx context.Context, recType *recommendation.Type, liked *bool) ([]*recommendation.Recommendation, error) {
	filter := recommendation.Filter{Type: recType, Liked: liked}
	s.logger.Debugf("Finding recommendations by %s", filter)
	return s.repo.List(ctx, filter)
}
