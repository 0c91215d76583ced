package user

import "context"

// Repository defines the interface for user data access
type Repository interface {
	// Create inserts the user and their default wallet as one atomic unit.
	// Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByEmail returns ErrNotFound when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
