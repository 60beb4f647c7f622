package recommendation

import "context"

// Repository defines the interface for recommendation data access
type Repository interface {
	// Create inserts a recommendation and returns the id assigned by storage
	Create(ctx context.Context, rec *Recommendation) (int64, error)

	// GetByID retrieves a recommendation by ID
	GetByID(ctx context.Context, id int64) (*Recommendation, error)

	// Update replaces the stored fields of an existing recommendation
	Update(ctx context.Context, rec *Recommendation) error

	// Delete removes a recommendation. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error

	// SetLiked sets the liked flag and returns the updated recommendation
	SetLiked(ctx context.Context, id int64, liked bool) (*Recommendation, error)

	// List retrieves recommendations matching filter in insertion order
	List(ctx context.Context, filter Filter) ([]*Recommendation, error)
}
