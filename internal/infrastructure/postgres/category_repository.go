package postgres

import (
	"context"
	"fmt"

	"mybudget/internal/domain/category"
)

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, params category.CreateParams) (*category.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, type)
		VALUES ($1, $2, $3)
		RETURNING category_id, user_id, name, type
	`

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, params.UserID, params.Name, string(params.Type)).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) ListByUserID(ctx context.Context, userID int64) ([]*category.Category, error) {
	query := `
		SELECT category_id, user_id, name, type
		FROM categories
		WHERE user_id = $1
		ORDER BY category_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Delete relies on the transactions.category_id foreign key: the database
// refuses the delete while transactions reference the category, which is
// surfaced as ErrInUse with data unchanged.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		if isPQError(err, codeForeignKeyViolation) {
			return category.ErrInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return category.ErrNotFound
	}

	return nil
}
