package report

import (
	"context"
	"time"
)

// Repository defines the read-only aggregations behind the dashboard.
type Repository interface {
	// Summary sums income and expense amounts for transactions on or after
	// since.
	Summary(ctx context.Context, userID int64, since time.Time) (Summary, error)
	// ExpensesByCategory groups expense amounts on or after since by
	// category name, descending by total, excluding zero totals.
	ExpensesByCategory(ctx context.Context, userID int64, since time.Time) ([]CategoryTotal, error)
	// TotalBalance sums all wallet balances for the user (all-time).
	TotalBalance(ctx context.Context, userID int64) (float64, error)
}
