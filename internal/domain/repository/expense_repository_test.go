package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
)

func newExpenseRepoWithMock(t *testing.T) (ExpenseRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPgExpenseRepository(db), mock, db
}

func TestExpenseFindByID_ScopesByOwner(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	// The owner ID is part of the WHERE clause, so a row owned by someone
	// else comes back as no rows at all.
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs("e1", "user-b").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "e1", "user-b")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestExpenseFindByID_Success(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "amount", "category", "expense_date", "user_id"}).
		AddRow("e1", "Lunch", 12.50, "Food", "2024-05-01", "user-a")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2`)).
		WithArgs("e1", "user-a").
		WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), "e1", "user-a")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Title != "Lunch" || got.Amount != 12.50 || got.OwnerID != "user-a" {
		t.Fatalf("unexpected expense: %+v", got)
	}
}

func TestExpenseUpdate_NoRowsMeansNotFound(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE expenses SET`)).
		WithArgs("Lunch", 12.50, "Food", "2024-05-01", "e1", "user-b").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.Expense{
		ID: "e1", Title: "Lunch", Amount: 12.50, Category: "Food", Date: "2024-05-01", OwnerID: "user-b",
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExpenseDelete_ScopesByOwner(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`)).
		WithArgs("e1", "user-b").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "e1", "user-b")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExpenseSummarize(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`)).
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(30.0))

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY category`)).
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"category", "sum"}).
			AddRow("Food", 12.5).
			AddRow("Transport", 17.5))

	summary, err := repo.Summarize(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary.TotalSpent != 30.0 {
		t.Fatalf("total mismatch: got %v", summary.TotalSpent)
	}
	if summary.ByCategory["Food"] != 12.5 || summary.ByCategory["Transport"] != 17.5 {
		t.Fatalf("by_category mismatch: %+v", summary.ByCategory)
	}
}

func TestExpenseSummarize_Empty(t *testing.T) {
	repo, mock, db := newExpenseRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0)`)).
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY category`)).
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"category", "sum"}))

	summary, err := repo.Summarize(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary.TotalSpent != 0 || len(summary.ByCategory) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
