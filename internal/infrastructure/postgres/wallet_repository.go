package postgres

import (
	"context"
	"fmt"

	"mybudget/internal/domain/wallet"
)

type WalletRepository struct {
	db *DB
}

func NewWalletRepository(db *DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(ctx context.Context, userID int64, name string) (*wallet.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, name, balance)
		VALUES ($1, $2, 0)
		RETURNING wallet_id, user_id, name, balance
	`

	var w wallet.Wallet
	err := r.db.QueryRowContext(ctx, query, userID, name).
		Scan(&w.ID, &w.UserID, &w.Name, &w.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &w, nil
}

func (r *WalletRepository) ListByUserID(ctx context.Context, userID int64) ([]*wallet.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, name, balance
		FROM wallets
		WHERE user_id = $1
		ORDER BY wallet_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*wallet.Wallet
	for rows.Next() {
		var w wallet.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, &w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallets: %w", err)
	}

	return wallets, nil
}

// Delete refuses to remove a wallet that still has transactions. The count
// check and the delete run in one database transaction so a concurrent
// insert cannot slip between them.
func (r *WalletRepository) Delete(ctx context.Context, walletID int64) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`, walletID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count wallet transactions: %w", err)
	}
	if count > 0 {
		return wallet.ErrHasTransactions
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM wallets WHERE wallet_id = $1`, walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return wallet.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wallet deletion: %w", err)
	}

	return nil
}

// FindBalanceDrift recomputes every wallet balance from its transactions and
// returns the wallets where the cached value disagrees.
func (r *WalletRepository) FindBalanceDrift(ctx context.Context) ([]wallet.BalanceDrift, error) {
	query := `
		SELECT w.wallet_id, w.user_id, w.balance,
		       COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE -t.amount END), 0) AS computed
		FROM wallets w
		LEFT JOIN transactions t ON t.wallet_id = w.wallet_id
		GROUP BY w.wallet_id, w.user_id, w.balance
		HAVING w.balance <> COALESCE(SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE -t.amount END), 0)
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance drift: %w", err)
	}
	defer rows.Close()

	var drifts []wallet.BalanceDrift
	for rows.Next() {
		var d wallet.BalanceDrift
		if err := rows.Scan(&d.WalletID, &d.UserID, &d.Balance, &d.Computed); err != nil {
			return nil, fmt.Errorf("failed to scan balance drift: %w", err)
		}
		drifts = append(drifts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance drift: %w", err)
	}

	return drifts, nil
}
