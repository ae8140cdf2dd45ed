package service

import (
	"context"
	"fmt"

	"ledgerhub/internal/common"
	"ledgerhub/internal/domain/model"
	"ledgerhub/internal/domain/repository"

	"github.com/google/uuid"
)

type StudentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

type StudentRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Grade  int    `json:"grade"`
	Course string `json:"course"`
}

type GradeUpdateRequest struct {
	Grade int `json:"grade"`
}

func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*model.Student, error) {
	if req.Name == "" || req.Course == "" {
		return nil, fmt.Errorf("name and course are required: %w", common.ErrBadRequest)
	}

	student := &model.Student{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Age:    req.Age,
		Grade:  req.Grade,
		Course: req.Course,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

func (s *StudentService) Top(ctx context.Context) ([]model.Student, error) {
	top, err := s.studentRepo.ListTop(ctx)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("no top students found: %w", common.ErrNotFound)
	}
	return top, nil
}

func (s *StudentService) Get(ctx context.Context, name string) (*model.Student, error) {
	return s.studentRepo.FindByName(ctx, name)
}

func (s *StudentService) Update(ctx context.Context, name string, req StudentRequest) error {
	student := &model.Student{
		Name:   name,
		Age:    req.Age,
		Grade:  req.Grade,
		Course: req.Course,
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

func (s *StudentService) UpdateGrade(ctx context.Context, name string, req GradeUpdateRequest) error {
	if req.Grade < model.GradeMin || req.Grade > model.GradeMax {
		return fmt.Errorf("grade must be between %d and %d: %w",
			model.GradeMin, model.GradeMax, common.ErrValidation)
	}
	if err := s.studentRepo.UpdateGrade(ctx, name, req.Grade); err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}
	return nil
}

func (s *StudentService) Delete(ctx context.Context, name string) error {
	if err := s.studentRepo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
