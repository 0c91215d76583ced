package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mybudget/internal/domain/user"
	"mybudget/internal/domain/wallet"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user together with their default wallet in one
// database transaction, so a failed wallet insert leaves no orphan user.
func (r *UserRepository) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at
	`

	u := user.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
	}

	err = tx.QueryRowContext(ctx, query, params.Name, params.Email, params.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isPQError(err, codeUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (user_id, name, balance) VALUES ($1, $2, 0)`,
		u.ID, wallet.DefaultName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create default wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user creation: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, created_at
		FROM users
		WHERE user_id = $1
	`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT user_id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}
