package category

import "context"

// Repository defines the interface for category data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Category, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Category, error)
	// Delete removes a category. Returns ErrInUse when transactions still
	// reference it and ErrNotFound for an unknown id.
	Delete(ctx context.Context, categoryID int64) error
}
