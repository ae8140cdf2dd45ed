package service

import (
	"context"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
)

// In-memory repository fakes. They mirror the ownership-scoping and
// conditional-update behavior of the pg implementations closely enough
// for service-level tests.

type fakeUserRepo struct {
	users map[string]*model.User // keyed by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Username]; exists {
		return fmt.Errorf("username already exists: %w", common.ErrDuplicate)
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeCategoryRepo struct {
	categories map[string]*model.Category // keyed by ID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*model.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	copied := *c
	f.categories[c.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range f.categories {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name, ownerID string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name && c.OwnerID == ownerID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeCategoryRepo) UpdateName(_ context.Context, oldName, newName, ownerID string) error {
	for _, c := range f.categories {
		if c.Name == oldName && c.OwnerID == ownerID {
			c.Name = newName
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeCategoryRepo) DeleteByName(_ context.Context, name, ownerID string) error {
	for id, c := range f.categories {
		if c.Name == name && c.OwnerID == ownerID {
			delete(f.categories, id)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeExpenseRepo struct {
	expenses map[string]*model.Expense // keyed by ID
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[string]*model.Expense{}}
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	copied := *e
	f.expenses[e.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Expense, error) {
	out := []model.Expense{}
	for _, e := range f.expenses {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) ListByCategory(_ context.Context, category, ownerID string) ([]model.Expense, error) {
	out := []model.Expense{}
	for _, e := range f.expenses {
		if e.OwnerID == ownerID && e.Category == category {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id, ownerID string) (*model.Expense, error) {
	e, ok := f.expenses[id]
	if !ok || e.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, e *model.Expense) error {
	stored, ok := f.expenses[e.ID]
	if !ok || stored.OwnerID != e.OwnerID {
		return common.ErrNotFound
	}
	copied := *e
	f.expenses[e.ID] = &copied
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id, ownerID string) error {
	e, ok := f.expenses[id]
	if !ok || e.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) Summarize(_ context.Context, ownerID string) (*model.ExpenseSummary, error) {
	summary := &model.ExpenseSummary{ByCategory: map[string]float64{}}
	for _, e := range f.expenses {
		if e.OwnerID == ownerID {
			summary.TotalSpent += e.Amount
			summary.ByCategory[e.Category] += e.Amount
		}
	}
	return summary, nil
}

type fakeBookRepo struct {
	books map[string]*model.Book // keyed by slug
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[string]*model.Book{}}
}

func (f *fakeBookRepo) Create(_ context.Context, b *model.Book) error {
	if _, exists := f.books[b.Slug]; exists {
		return fmt.Errorf("book with this title already exists: %w", common.ErrDuplicate)
	}
	copied := *b
	f.books[b.Slug] = &copied
	return nil
}

func (f *fakeBookRepo) List(_ context.Context) ([]model.Book, error) {
	out := []model.Book{}
	for _, b := range f.books {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookRepo) FindBySlug(_ context.Context, slug string) (*model.Book, error) {
	b, ok := f.books[slug]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) SetAvailability(_ context.Context, slug string, from, to bool) error {
	b, ok := f.books[slug]
	if !ok || b.IsAvailable != from {
		return common.ErrStateConflict
	}
	b.IsAvailable = to
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, slug string) error {
	b, ok := f.books[slug]
	if !ok || !b.IsAvailable {
		return common.ErrStateConflict
	}
	delete(f.books, slug)
	return nil
}

type fakeStudentRepo struct {
	students map[string]*model.Student // keyed by name
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[string]*model.Student{}}
}

func (f *fakeStudentRepo) Create(_ context.Context, s *model.Student) error {
	if _, exists := f.students[s.Name]; exists {
		return fmt.Errorf("student already exists: %w", common.ErrDuplicate)
	}
	copied := *s
	f.students[s.Name] = &copied
	return nil
}

func (f *fakeStudentRepo) List(_ context.Context) ([]model.Student, error) {
	out := []model.Student{}
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentRepo) ListTop(_ context.Context) ([]model.Student, error) {
	out := []model.Student{}
	for _, s := range f.students {
		if s.Grade >= model.TopGradeThreshold {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) FindByName(_ context.Context, name string) (*model.Student, error) {
	s, ok := f.students[name]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, s *model.Student) error {
	stored, ok := f.students[s.Name]
	if !ok {
		return common.ErrNotFound
	}
	stored.Age, stored.Grade, stored.Course = s.Age, s.Grade, s.Course
	return nil
}

func (f *fakeStudentRepo) UpdateGrade(_ context.Context, name string, grade int) error {
	s, ok := f.students[name]
	if !ok {
		return common.ErrNotFound
	}
	s.Grade = grade
	return nil
}

func (f *fakeStudentRepo) DeleteByName(_ context.Context, name string) error {
	if _, ok := f.students[name]; !ok {
		return common.ErrNotFound
	}
	delete(f.students, name)
	return nil
}

type fakeSummaryCache struct {
	entries     map[string]*model.ExpenseSummary
	invalidated []string
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: map[string]*model.ExpenseSummary{}}
}

func (f *fakeSummaryCache) Get(_ context.Context, ownerID string) (*model.ExpenseSummary, bool) {
	summary, ok := f.entries[ownerID]
	return summary, ok
}

func (f *fakeSummaryCache) Set(_ context.Context, ownerID string, summary *model.ExpenseSummary) error {
	f.entries[ownerID] = summary
	return nil
}

func (f *fakeSummaryCache) Invalidate(_ context.Context, ownerID string) error {
	delete(f.entries, ownerID)
	f.invalidated = append(f.invalidated, ownerID)
	return nil
}
