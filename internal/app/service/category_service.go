package service

import (
	"context"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/google/uuid"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func (s *CategoryService) Create(ctx context.Context, ownerID string, req CategoryRequest) (*model.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("category name is required: %w", common.ErrBadRequest)
	}

	category := &model.Category{
		ID:      uuid.NewString(),
		Name:    req.Name,
		OwnerID: ownerID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	return s.categoryRepo.ListByOwner(ctx, ownerID)
}

func (s *CategoryService) Rename(ctx context.Context, ownerID, oldName string, req CategoryRequest) error {
	if req.Name == "" {
		return fmt.Errorf("category name is required: %w", common.ErrBadRequest)
	}
	if _, err := s.categoryRepo.FindByName(ctx, oldName, ownerID); err != nil {
		return err
	}
	if err := s.categoryRepo.UpdateName(ctx, oldName, req.Name, ownerID); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, ownerID, name string) error {
	if err := s.categoryRepo.DeleteByName(ctx, name, ownerID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
