package service

import (
	"context"
	"errors"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type LibraryService struct {
	bookRepo repository.BookRepository
}

func NewLibraryService(bookRepo repository.BookRepository) *LibraryService {
	return &LibraryService{bookRepo: bookRepo}
}

type AddBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (s *LibraryService) Add(ctx context.Context, req AddBookRequest) (*model.Book, error) {
	if req.Title == "" || req.Author == "" {
		return nil, fmt.Errorf("title and author are required: %w", common.ErrBadRequest)
	}

	book := &model.Book{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Author:      req.Author,
		Slug:        slug.Make(req.Title),
		IsAvailable: true,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	return book, nil
}

func (s *LibraryService) List(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.List(ctx)
}

// Borrow moves a book from Available to Borrowed. The repository update
// is conditional on the current state, so two concurrent borrows of the
// same book cannot both succeed.
func (s *LibraryService) Borrow(ctx context.Context, titleSlug string) (*model.Book, error) {
	book, err := s.bookRepo.FindBySlug(ctx, titleSlug)
	if err != nil {
		return nil, err
	}
	if !book.IsAvailable {
		return nil, fmt.Errorf("book already borrowed: %w", common.ErrStateConflict)
	}

	if err := s.bookRepo.SetAvailability(ctx, titleSlug, true, false); err != nil {
		if errors.Is(err, common.ErrStateConflict) {
			return nil, fmt.Errorf("book already borrowed: %w", common.ErrStateConflict)
		}
		return nil, fmt.Errorf("failed to borrow book: %w", err)
	}
	book.IsAvailable = false
	return book, nil
}

func (s *LibraryService) Return(ctx context.Context, titleSlug string) (*model.Book, error) {
	book, err := s.bookRepo.FindBySlug(ctx, titleSlug)
	if err != nil {
		return nil, err
	}
	if book.IsAvailable {
		return nil, fmt.Errorf("book was not borrowed: %w", common.ErrStateConflict)
	}

	if err := s.bookRepo.SetAvailability(ctx, titleSlug, false, true); err != nil {
		if errors.Is(err, common.ErrStateConflict) {
			return nil, fmt.Errorf("book was not borrowed: %w", common.ErrStateConflict)
		}
		return nil, fmt.Errorf("failed to return book: %w", err)
	}
	book.IsAvailable = true
	return book, nil
}

func (s *LibraryService) Delete(ctx context.Context, titleSlug string) error {
	book, err := s.bookRepo.FindBySlug(ctx, titleSlug)
	if err != nil {
		return err
	}
	if !book.IsAvailable {
		return fmt.Errorf("cannot delete a borrowed book: %w", common.ErrStateConflict)
	}

	if err := s.bookRepo.Delete(ctx, titleSlug); err != nil {
		if errors.Is(err, common.ErrStateConflict) {
			return fmt.Errorf("cannot delete a borrowed book: %w", common.ErrStateConflict)
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}
