package recommendation

import "context"

// Service defines the interface for recommendation business logic
type Service interface {
	// Create stores a new recommendation. Any id already set on rec is discarded.
	Create(ctx context.Context, rec *Recommendation) (*Recommendation, error)

	// GetByID retrieves a recommendation by ID
	GetByID(ctx context.Context, id int64) (*Recommendation, error)

	// Update applies a full or partial update from an untyped body
	Update(ctx context.Context, id int64, data interface{}) (*Recommendation, error)

	// Delete deletes a recommendation if it exists
	Delete(ctx context.Context, id int64) error

	// Like sets liked to true
	Like(ctx context.Context, id int64) (*Recommendation, error)

	// Unlike sets liked to false
	Unlike(ctx context.Context, id int64) (*Recommendation, error)

	// List applies the parsed list parameters
	List(ctx context.Context, q ListQuery) ([]*Recommendation, error)

	FindAll(ctx context.Context) ([]*Recommendation, error)
	FindByPID(ctx context.Context, pid int64) ([]*Recommendation, error)
	FindByType(ctx context.Context, t Type) ([]*Recommendation, error)
	FindByLiked(ctx context.Context, liked bool) ([]*Recommendation, error)

	// FindByAttributes ANDs whichever of recType and liked are non-nil
	FindByAttributes(ctx context.Context, recType *Type, liked *bool) ([]*Recommendation, error)
}
