package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/pratik-mahalle/recommendations/internal/domain/recommendation"
	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/testutil"
)

func newTestService() (recommendation.Service, *testutil.MockRecommendationRepository) {
	mockRepo := testutil.NewMockRecommendationRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewRecommendationService(mockRepo, log), mockRepo
}

func seedService(t *testing.T, service recommendation.Service, recs ...*recommendation.Recommendation) []*recommendation.Recommendation {
	t.Helper()
	out := make([]*recommendation.Recommendation, 0, len(recs))
	for _, rec := range recs {
		created, err := service.Create(context.Background(), rec)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		out = append(out, created)
	}
	return out
}

func TestRecommendationService_Create(t *testing.T) {
	service, mockRepo := newTestService()

	tests := []struct {
		name           string
		recommendation *recommendation.Recommendation
		createErr      error
		wantErr        bool
	}{
		{
			name:           "create default recommendation",
			recommendation: recommendation.New(100, 200),
		},
		{
			name: "caller supplied id is discarded",
			recommendation: &recommendation.Recommendation{
				ID:             555,
				PID:            1,
				RecommendedPID: 2,
				Type:           recommendation.TypeAccessory,
			},
		},
		{
			name:           "repository failure",
			recommendation: recommendation.New(1, 2),
			createErr:      errors.DatabaseError("Failed to create recommendation", stderrors.New("disk full")),
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.CreateError = tt.createErr
			created, err := service.Create(context.Background(), tt.recommendation)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if created.ID == 0 || created.ID == 555 {
				t.Errorf("Create() id = %d, want storage assigned id", created.ID)
			}
			if created.PID != tt.recommendation.PID || created.Type != tt.recommendation.Type {
				t.Errorf("Create() = %+v", created)
			}
		})
	}
}

func TestRecommendationService_CreateThenGet(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created := seedService(t, service, &recommendation.Recommendation{PID: 10, RecommendedPID: 20, Type: recommendation.TypeUpSell, Liked: true})[0]

	got, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if *got != *created {
		t.Errorf("GetByID() = %+v, want %+v", got, created)
	}

	if _, err := service.GetByID(ctx, 999); !errors.IsNotFound(err) {
		t.Errorf("GetByID(999) error = %v, want not found", err)
	}
}

func TestRecommendationService_Update(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	created := seedService(t, service, recommendation.New(1, 2))[0]

	tests := []struct {
		name     string
		id       int64
		data     interface{}
		want     *recommendation.Recommendation
		wantCode string
	}{
		{
			name: "partial update",
			id:   created.ID,
			data: map[string]interface{}{"type": "cross-sell"},
			want: &recommendation.Recommendation{ID: created.ID, PID: 1, RecommendedPID: 2, Type: recommendation.TypeCrossSell},
		},
		{
			name: "full update ignores body id",
			id:   created.ID,
			data: map[string]interface{}{"id": float64(77), "pid": float64(3), "recommended_pid": float64(4), "type": "default", "liked": true},
			want: &recommendation.Recommendation{ID: created.ID, PID: 3, RecommendedPID: 4, Type: recommendation.TypeDefault, Liked: true},
		},
		{
			name:     "invalid type",
			id:       created.ID,
			data:     map[string]interface{}{"type": "bogus"},
			wantCode: errors.ErrCodeValidation,
		},
		{
			name:     "missing id",
			id:       999,
			data:     map[string]interface{}{"type": "default"},
			wantCode: errors.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Update(ctx, tt.id, tt.data)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("Update() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if *got != *tt.want {
				t.Errorf("Update() = %+v, want %+v", got, tt.want)
			}
			stored, _ := service.GetByID(ctx, tt.id)
			if *stored != *tt.want {
				t.Errorf("stored = %+v, want %+v", stored, tt.want)
			}
		})
	}
}

func TestRecommendationService_Delete(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	created := seedService(t, service, recommendation.New(1, 2))[0]

	for i := 0; i < 2; i++ {
		if err := service.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete() call %d error = %v", i+1, err)
		}
	}
	if _, err := service.GetByID(ctx, created.ID); !errors.IsNotFound(err) {
		t.Errorf("GetByID() after delete error = %v, want not found", err)
	}
}

func TestRecommendationService_LikeUnlike(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	created := seedService(t, service, recommendation.New(1, 2))[0]

	liked, err := service.Like(ctx, created.ID)
	if err != nil || !liked.Liked {
		t.Fatalf("Like() = %+v, %v", liked, err)
	}
	unliked, err := service.Unlike(ctx, created.ID)
	if err != nil || unliked.Liked {
		t.Fatalf("Unlike() = %+v, %v", unliked, err)
	}
	if _, err := service.Like(ctx, 999); !errors.IsNotFound(err) {
		t.Errorf("Like(999) error = %v, want not found", err)
	}
}

func TestRecommendationService_List(t *testing.T) {
	service, mockRepo := newTestService()
	ctx := context.Background()
	recs := seedService(t, service,
		&recommendation.Recommendation{PID: 1, RecommendedPID: 2, Type: recommendation.TypeCrossSell},
		&recommendation.Recommendation{PID: 1, RecommendedPID: 3, Type: recommendation.TypeDefault, Liked: true},
		&recommendation.Recommendation{PID: 5, RecommendedPID: 2, Type: recommendation.TypeCrossSell, Liked: true},
	)

	pid := int64(1)
	one := 1
	crossSell := recommendation.TypeCrossSell
	liked := true

	tests := []struct {
		name       string
		q          recommendation.ListQuery
		wantIDs    []int64
		wantFilter recommendation.Filter
	}{
		{
			name:    "no parameters uses find all",
			q:       recommendation.ListQuery{},
			wantIDs: []int64{recs[0].ID, recs[1].ID, recs[2].ID},
		},
		{
			name:    "pid narrows in memory",
			q:       recommendation.ListQuery{PID: &pid},
			wantIDs: []int64{recs[0].ID, recs[1].ID},
		},
		{
			name:    "pid and amount keeps the first",
			q:       recommendation.ListQuery{PID: &pid, Amount: &one},
			wantIDs: []int64{recs[0].ID},
		},
		{
			name:       "type queries storage",
			q:          recommendation.ListQuery{Type: &crossSell},
			wantIDs:    []int64{recs[0].ID, recs[2].ID},
			wantFilter: recommendation.Filter{Type: &crossSell},
		},
		{
			name:       "type and liked",
			q:          recommendation.ListQuery{Type: &crossSell, Liked: &liked},
			wantIDs:    []int64{recs[2].ID},
			wantFilter: recommendation.Filter{Type: &crossSell, Liked: &liked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ListCalls = nil

			got, err := service.List(ctx, tt.q)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("List() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, rec := range got {
				if rec.ID != tt.wantIDs[i] {
					t.Errorf("List()[%d].ID = %d, want %d", i, rec.ID, tt.wantIDs[i])
				}
			}

			if len(mockRepo.ListCalls) != 1 {
				t.Fatalf("repository List called %d times, want 1", len(mockRepo.ListCalls))
			}
			call := mockRepo.ListCalls[0]
			if call.PID != nil {
				t.Error("pid must not be pushed to storage")
			}
			if call.String() != tt.wantFilter.String() {
				t.Errorf("storage filter = %s, want %s", call, tt.wantFilter)
			}
		})
	}
}

func TestRecommendationService_ListRepositoryError(t *testing.T) {
	service, mockRepo := newTestService()
	mockRepo.ListError = errors.DatabaseError("Failed to list recommendations", stderrors.New("timeout"))

	if _, err := service.List(context.Background(), recommendation.ListQuery{}); !errors.Is(err, errors.ErrCodeDatabase) {
		t.Errorf("List() error = %v, want database error", err)
	}
}

func TestRecommendationService_FindHelpers(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	seedService(t, service,
		&recommendation.Recommendation{PID: 1, RecommendedPID: 2, Type: recommendation.TypeUpSell},
		&recommendation.Recommendation{PID: 2, RecommendedPID: 3, Type: recommendation.TypeDefault, Liked: true},
	)

	byPID, _ := service.FindByPID(ctx, 2)
	if len(byPID) != 1 || byPID[0].PID != 2 {
		t.Errorf("FindByPID() = %v", byPID)
	}
	byType, _ := service.FindByType(ctx, recommendation.TypeUpSell)
	if len(byType) != 1 || byType[0].Type != recommendation.TypeUpSell {
		t.Errorf("FindByType() = %v", byType)
	}
	byLiked, _ := service.FindByLiked(ctx, false)
	if len(byLiked) != 1 || byLiked[0].Liked {
		t.Errorf("FindByLiked() = %v", byLiked)
	}
	all, _ := service.FindAll(ctx)
	if len(all) != 2 {
		t.Errorf("FindAll() returned %d, want 2", len(all))
	}
}
