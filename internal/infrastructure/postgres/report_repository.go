package postgres

import (
	"context"
	"fmt"
	"time"

	"mybudget/internal/domain/report"
)

type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Summary(ctx context.Context, userID int64, since time.Time) (report.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expenses
		FROM transactions
		WHERE user_id = $1 AND date >= $2
	`

	var s report.Summary
	err := r.db.QueryRowContext(ctx, query, userID, since).
		Scan(&s.TotalIncome, &s.TotalExpenses)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to query summary: %w", err)
	}

	return s, nil
}

func (r *ReportRepository) ExpensesByCategory(ctx context.Context, userID int64, since time.Time) ([]report.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1 AND t.type = 'expense' AND t.date >= $2
		GROUP BY c.name
		HAVING SUM(t.amount) > 0
		ORDER BY total DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query category breakdown: %w", err)
	}
	defer rows.Close()

	var totals []report.CategoryTotal
	for rows.Next() {
		var ct report.CategoryTotal
		if err := rows.Scan(&ct.Name, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, ct)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	return totals, nil
}

func (r *ReportRepository) TotalBalance(ctx context.Context, userID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM wallets WHERE user_id = $1`, userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to query total balance: %w", err)
	}

	return total, nil
}
