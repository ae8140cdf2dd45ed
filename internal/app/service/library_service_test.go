package service

import (
	"context"
	"testing"

	"ledgerhub/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryAdd_SlugsTitle(t *testing.T) {
	t.Parallel()

	svc := NewLibraryService(newFakeBookRepo())

	book, err := svc.Add(context.Background(), AddBookRequest{Title: "Clean Code", Author: "Robert Martin"})
	require.NoError(t, err)
	assert.Equal(t, "clean-code", book.Slug)
	assert.True(t, book.IsAvailable)
}

func TestLibraryAdd_DuplicateTitle(t *testing.T) {
	t.Parallel()

	svc := NewLibraryService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.Add(ctx, AddBookRequest{Title: "Clean Code", Author: "Robert Martin"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, AddBookRequest{Title: "Clean Code", Author: "Someone Else"})
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestLibraryBorrowReturn_StateMachine(t *testing.T) {
	t.Parallel()

	svc := NewLibraryService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.Add(ctx, AddBookRequest{Title: "Clean Code", Author: "Robert Martin"})
	require.NoError(t, err)

	// Available -> Borrowed
	book, err := svc.Borrow(ctx, "clean-code")
	require.NoError(t, err)
	assert.False(t, book.IsAvailable)

	// Borrowing again conflicts.
	_, err = svc.Borrow(ctx, "clean-code")
	assert.ErrorIs(t, err, common.ErrStateConflict)

	// Borrowed -> Available
	book, err = svc.Return(ctx, "clean-code")
	require.NoError(t, err)
	assert.True(t, book.IsAvailable)

	// Returning again conflicts.
	_, err = svc.Return(ctx, "clean-code")
	assert.ErrorIs(t, err, common.ErrStateConflict)
}

func TestLibraryDelete_BorrowedBookIsProtected(t *testing.T) {
	t.Parallel()

	svc := NewLibraryService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.Add(ctx, AddBookRequest{Title: "Clean Code", Author: "Robert Martin"})
	require.NoError(t, err)
	_, err = svc.Borrow(ctx, "clean-code")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "clean-code"), common.ErrStateConflict)

	_, err = svc.Return(ctx, "clean-code")
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, "clean-code"))
}

func TestLibrary_MissingBookIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewLibraryService(newFakeBookRepo())
	ctx := context.Background()

	_, err := svc.Borrow(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.Return(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "ghost"), common.ErrNotFound)
}
