package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mybudget/internal/domain/category"
	"mybudget/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts the transaction and applies its signed delta to the wallet
// balance in one database transaction. If either statement fails, neither is
// committed.
func (r *TransactionRepository) Create(ctx context.Context, params transaction.CreateParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO transactions (user_id, wallet_id, category_id, amount, type, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING transaction_id
	`,
		params.UserID, params.WalletID, params.CategoryID,
		params.Amount, string(params.Type), params.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance + $1 WHERE wallet_id = $2`,
		params.Type.Signed(params.Amount), params.WalletID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust wallet balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction creation: %w", err)
	}

	return id, nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.wallet_id, t.category_id, t.amount, t.type,
		       t.description, t.date, c.name AS category_name, w.name AS wallet_name
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		JOIN wallets w ON t.wallet_id = w.wallet_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.transaction_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		t := transaction.Transaction{UserID: userID}
		err := rows.Scan(
			&t.ID, &t.WalletID, &t.CategoryID, &t.Amount, &t.Type,
			&t.Description, &t.Date, &t.CategoryName, &t.WalletName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// Update reverses the original delta on the original wallet, applies the new
// delta to the new wallet (possibly the same one), and rewrites the row. All
// three statements commit or roll back together.
func (r *TransactionRepository) Update(ctx context.Context, id int64, params transaction.UpdateParams) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	origWalletID, origAmount, origType, err := lookupForBalance(ctx, tx, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance - $1 WHERE wallet_id = $2`,
		origType.Signed(origAmount), origWalletID,
	)
	if err != nil {
		return fmt.Errorf("failed to reverse original balance delta: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance + $1 WHERE wallet_id = $2`,
		params.Type.Signed(params.Amount), params.WalletID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply new balance delta: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE transactions
		SET wallet_id = $1, category_id = $2, amount = $3, type = $4, description = $5, date = $6
		WHERE transaction_id = $7
	`,
		params.WalletID, params.CategoryID, params.Amount,
		string(params.Type), params.Description, params.Date, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction update: %w", err)
	}

	return nil
}

// Delete reverses the transaction's delta on its wallet before removing the
// row, so create-then-delete returns the balance to its prior value.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	walletID, amount, typ, err := lookupForBalance(ctx, tx, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance - $1 WHERE wallet_id = $2`,
		typ.Signed(amount), walletID,
	)
	if err != nil {
		return fmt.Errorf("failed to reverse balance delta: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction deletion: %w", err)
	}

	return nil
}

// lookupForBalance locks the transaction row and returns the fields needed
// to reverse its balance effect.
func lookupForBalance(ctx context.Context, tx *Tx, id int64) (walletID int64, amount float64, typ category.Type, err error) {
	err = tx.QueryRowContext(ctx, `
		SELECT wallet_id, amount, type
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE
	`, id).Scan(&walletID, &amount, &typ)
	if err == sql.ErrNoRows {
		return 0, 0, "", transaction.ErrNotFound
	}
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to look up transaction: %w", err)
	}
	return walletID, amount, typ, nil
}
