package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// BookRepository keys books by title slug and carries no owner column.
// Availability transitions are single conditional UPDATEs guarded on the
// current state, so concurrent borrow attempts cannot both succeed.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	FindBySlug(ctx context.Context, slug string) (*model.Book, error)
	SetAvailability(ctx context.Context, slug string, from, to bool) error
	Delete(ctx context.Context, slug string) error
}

type pgBookRepository struct {
	db *sql.DB
}

func NewPgBookRepository(db *sql.DB) BookRepository {
	return &pgBookRepository{db: db}
}

func (r *pgBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `INSERT INTO books (id, title, author, slug, is_available)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, book.ID, book.Title, book.Author, book.Slug, book.IsAvailable)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for slug
			return fmt.Errorf("book with this title already exists: %w", common.ErrDuplicate)
		}
		return fmt.Errorf("pgBookRepository.Create: %w", err)
	}
	return nil
}

func (r *pgBookRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT id, title, author, slug, is_available FROM books ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgBookRepository.List: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Slug, &b.IsAvailable); err != nil {
			return nil, fmt.Errorf("pgBookRepository.List scan: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *pgBookRepository) FindBySlug(ctx context.Context, slug string) (*model.Book, error) {
	query := `SELECT id, title, author, slug, is_available FROM books WHERE slug = $1`
	book := &model.Book{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&book.ID, &book.Title, &book.Author, &book.Slug, &book.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgBookRepository.FindBySlug: %w", err)
	}
	return book, nil
}

// SetAvailability flips availability only when the stored state matches
// `from`. Zero rows affected means the book changed state underneath the
// caller (or never was in `from`), reported as a state conflict.
func (r *pgBookRepository) SetAvailability(ctx context.Context, slug string, from, to bool) error {
	query := `UPDATE books SET is_available = $1 WHERE slug = $2 AND is_available = $3`
	result, err := r.db.ExecContext(ctx, query, to, slug, from)
	if err != nil {
		return fmt.Errorf("pgBookRepository.SetAvailability: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgBookRepository.SetAvailability: %w", err)
	}
	if affected == 0 {
		return common.ErrStateConflict
	}
	return nil
}

// Delete removes the book only while it is available; deleting a borrowed
// book is a state conflict.
func (r *pgBookRepository) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM books WHERE slug = $1 AND is_available = TRUE`
	result, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("pgBookRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgBookRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrStateConflict
	}
	return nil
}
