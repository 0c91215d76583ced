package transaction

import "context"

// Repository defines the interface for transaction data access.
//
// Create, Update, and Delete each adjust the referenced wallet balances
// inside the same database transaction as the row mutation, so the wallet
// invariant (balance == signed sum of transactions) holds after every call.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Transaction, error)
	// Update reverses the original signed delta on the original wallet and
	// applies the new signed delta to the new wallet, which may be the same.
	// Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id int64, params UpdateParams) error
	// Delete reverses the transaction's signed delta before removing the
	// row. Returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id int64) error
}
