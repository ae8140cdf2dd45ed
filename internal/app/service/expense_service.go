package service

import (
	"context"
	"fmt"
	"math"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/google/uuid"
)

// SummaryCache is satisfied by cache.SummaryCache. Cache failures are
// never surfaced: a miss or a failed write just means the next summary
// read goes to Postgres.
type SummaryCache interface {
	Get(ctx context.Context, ownerID string) (*model.ExpenseSummary, bool)
	Set(ctx context.Context, ownerID string, summary *model.ExpenseSummary) error
	Invalidate(ctx context.Context, ownerID string) error
}

type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	summaries   SummaryCache
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, summaries SummaryCache) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, summaries: summaries}
}

type CreateExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// UpdateExpenseRequest fields are merged over the stored row. A zero or
// empty field keeps the stored value, so amount=0 or title="" cannot be
// written through an update. Long-standing policy of the wire contract,
// kept as-is rather than "fixed".
type UpdateExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

func (s *ExpenseService) Create(ctx context.Context, ownerID string, req CreateExpenseRequest) (*model.Expense, error) {
	if req.Title == "" || req.Category == "" || req.Date == "" {
		return nil, fmt.Errorf("title, category and date are required: %w", common.ErrBadRequest)
	}

	expense := &model.Expense{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		OwnerID:  ownerID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.invalidateSummary(ctx, ownerID)
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, ownerID string) ([]model.Expense, error) {
	return s.expenseRepo.ListByOwner(ctx, ownerID)
}

func (s *ExpenseService) ListByCategory(ctx context.Context, ownerID, category string) ([]model.Expense, error) {
	return s.expenseRepo.ListByCategory(ctx, category, ownerID)
}

func (s *ExpenseService) Get(ctx context.Context, ownerID, id string) (*model.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id, ownerID)
}

func (s *ExpenseService) Update(ctx context.Context, ownerID, id string, req UpdateExpenseRequest) (*model.Expense, error) {
	existing, err := s.expenseRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Amount != 0 {
		existing.Amount = req.Amount
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Date != "" {
		existing.Date = req.Date
	}

	if err := s.expenseRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	s.invalidateSummary(ctx, ownerID)
	return existing, nil
}

func (s *ExpenseService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.expenseRepo.FindByID(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.invalidateSummary(ctx, ownerID)
	return nil
}

func (s *ExpenseService) Summary(ctx context.Context, ownerID string) (*model.ExpenseSummary, error) {
	if s.summaries != nil {
		if cached, ok := s.summaries.Get(ctx, ownerID); ok {
			return cached, nil
		}
	}

	summary, err := s.expenseRepo.Summarize(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	summary.TotalSpent = round2(summary.TotalSpent)
	for category, sum := range summary.ByCategory {
		summary.ByCategory[category] = round2(sum)
	}

	if s.summaries != nil {
		_ = s.summaries.Set(ctx, ownerID, summary)
	}
	return summary, nil
}

func (s *ExpenseService) invalidateSummary(ctx context.Context, ownerID string) {
	if s.summaries != nil {
		_ = s.summaries.Invalidate(ctx, ownerID)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
