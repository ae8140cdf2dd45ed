package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
)

// CategoryRepository is owner-scoped: every read and write carries the
// owner's user ID in the predicate, so one user's rows are invisible to
// another. A foreign row looks exactly like a missing one.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Category, error)
	FindByName(ctx context.Context, name, ownerID string) (*model.Category, error)
	UpdateName(ctx context.Context, oldName, newName, ownerID string) error
	DeleteByName(ctx context.Context, name, ownerID string) error
}

type pgCategoryRepository struct {
	db *sql.DB
}

func NewPgCategoryRepository(db *sql.DB) CategoryRepository {
	return &pgCategoryRepository{db: db}
}

func (r *pgCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (id, name, user_id)
	          VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.OwnerID)
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Category, error) {
	query := `SELECT id, name, user_id FROM categories WHERE user_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.ListByOwner: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("pgCategoryRepository.ListByOwner scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *pgCategoryRepository) FindByName(ctx context.Context, name, ownerID string) (*model.Category, error) {
	query := `SELECT id, name, user_id FROM categories WHERE name = $1 AND user_id = $2`
	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, name, ownerID).Scan(
		&category.ID, &category.Name, &category.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCategoryRepository.FindByName: %w", err)
	}
	return category, nil
}

func (r *pgCategoryRepository) UpdateName(ctx context.Context, oldName, newName, ownerID string) error {
	query := `UPDATE categories SET name = $1 WHERE name = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, newName, oldName, ownerID)
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.UpdateName: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.UpdateName: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCategoryRepository) DeleteByName(ctx context.Context, name, ownerID string) error {
	query := `DELETE FROM categories WHERE name = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, name, ownerID)
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.DeleteByName: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.DeleteByName: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
