package wallet

import "context"

// Repository defines the interface for wallet data access
type Repository interface {
	Create(ctx context.Context, userID int64, name string) (*Wallet, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Wallet, error)
	// Delete removes a wallet that has no referencing transactions.
	// Returns ErrHasTransactions when the pre-check finds any, and
	// ErrNotFound for an unknown id.
	Delete(ctx context.Context, walletID int64) error
	// FindBalanceDrift lists wallets whose cached balance differs from the
	// recomputed signed sum of their transactions. Read-only.
	FindBalanceDrift(ctx context.Context) ([]BalanceDrift, error)
}
