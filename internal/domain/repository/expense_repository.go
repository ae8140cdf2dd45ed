package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
)

// ExpenseRepository is owner-scoped like CategoryRepository. Update writes
// the full row; partial-field merge semantics live in the service layer.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Expense, error)
	ListByCategory(ctx context.Context, category, ownerID string) ([]model.Expense, error)
	FindByID(ctx context.Context, id, ownerID string) (*model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id, ownerID string) error
	Summarize(ctx context.Context, ownerID string) (*model.ExpenseSummary, error)
}

type pgExpenseRepository struct {
	db *sql.DB
}

func NewPgExpenseRepository(db *sql.DB) ExpenseRepository {
	return &pgExpenseRepository{db: db}
}

func (r *pgExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	query := `INSERT INTO expenses (id, title, amount, category, expense_date, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Title, e.Amount, e.Category, e.Date, e.OwnerID)
	if err != nil {
		return fmt.Errorf("pgExpenseRepository.Create: %w", err)
	}
	return nil
}

func (r *pgExpenseRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Expense, error) {
	query := `SELECT id, title, amount, category, expense_date, user_id
	          FROM expenses WHERE user_id = $1 ORDER BY expense_date`
	return r.list(ctx, query, ownerID)
}

func (r *pgExpenseRepository) ListByCategory(ctx context.Context, category, ownerID string) ([]model.Expense, error) {
	query := `SELECT id, title, amount, category, expense_date, user_id
	          FROM expenses WHERE category = $1 AND user_id = $2 ORDER BY expense_date`
	return r.list(ctx, query, category, ownerID)
}

func (r *pgExpenseRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgExpenseRepository.list: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.OwnerID); err != nil {
			return nil, fmt.Errorf("pgExpenseRepository.list scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *pgExpenseRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Expense, error) {
	query := `SELECT id, title, amount, category, expense_date, user_id
	          FROM expenses WHERE id = $1 AND user_id = $2`
	expense := &model.Expense{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&expense.ID, &expense.Title, &expense.Amount, &expense.Category, &expense.Date, &expense.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgExpenseRepository.FindByID: %w", err)
	}
	return expense, nil
}

func (r *pgExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	query := `UPDATE expenses SET title = $1, amount = $2, category = $3, expense_date = $4
	          WHERE id = $5 AND user_id = $6`
	result, err := r.db.ExecContext(ctx, query, e.Title, e.Amount, e.Category, e.Date, e.ID, e.OwnerID)
	if err != nil {
		return fmt.Errorf("pgExpenseRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgExpenseRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgExpenseRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("pgExpenseRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgExpenseRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgExpenseRepository) Summarize(ctx context.Context, ownerID string) (*model.ExpenseSummary, error) {
	summary := &model.ExpenseSummary{ByCategory: map[string]float64{}}

	totalQuery := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, totalQuery, ownerID).Scan(&summary.TotalSpent); err != nil {
		return nil, fmt.Errorf("pgExpenseRepository.Summarize total: %w", err)
	}

	byCategoryQuery := `SELECT category, SUM(amount) FROM expenses
	                    WHERE user_id = $1 GROUP BY category`
	rows, err := r.db.QueryContext(ctx, byCategoryQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pgExpenseRepository.Summarize by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var sum float64
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("pgExpenseRepository.Summarize scan: %w", err)
		}
		summary.ByCategory[category] = sum
	}
	return summary, rows.Err()
}
