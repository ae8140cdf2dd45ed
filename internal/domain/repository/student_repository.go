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

// StudentRepository keys students by name and carries no owner column.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	List(ctx context.Context) ([]model.Student, error)
	ListTop(ctx context.Context) ([]model.Student, error)
	FindByName(ctx context.Context, name string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	UpdateGrade(ctx context.Context, name string, grade int) error
	DeleteByName(ctx context.Context, name string) error
}

type pgStudentRepository struct {
	db *sql.DB
}

func NewPgStudentRepository(db *sql.DB) StudentRepository {
	return &pgStudentRepository{db: db}
}

func (r *pgStudentRepository) Create(ctx context.Context, s *model.Student) error {
	query := `INSERT INTO students (id, name, age, grade, course)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Age, s.Grade, s.Course)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint for name
			return fmt.Errorf("student already exists: %w", common.ErrDuplicate)
		}
		return fmt.Errorf("pgStudentRepository.Create: %w", err)
	}
	return nil
}

func (r *pgStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	query := `SELECT id, name, age, grade, course FROM students ORDER BY name`
	return r.list(ctx, query)
}

func (r *pgStudentRepository) ListTop(ctx context.Context) ([]model.Student, error) {
	query := `SELECT id, name, age, grade, course FROM students
	          WHERE grade >= $1 ORDER BY grade DESC`
	return r.list(ctx, query, model.TopGradeThreshold)
}

func (r *pgStudentRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgStudentRepository.list: %w", err)
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Age, &s.Grade, &s.Course); err != nil {
			return nil, fmt.Errorf("pgStudentRepository.list scan: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *pgStudentRepository) FindByName(ctx context.Context, name string) (*model.Student, error) {
	query := `SELECT id, name, age, grade, course FROM students WHERE name = $1`
	student := &model.Student{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&student.ID, &student.Name, &student.Age, &student.Grade, &student.Course,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgStudentRepository.FindByName: %w", err)
	}
	return student, nil
}

func (r *pgStudentRepository) Update(ctx context.Context, s *model.Student) error {
	query := `UPDATE students SET age = $1, grade = $2, course = $3 WHERE name = $4`
	result, err := r.db.ExecContext(ctx, query, s.Age, s.Grade, s.Course, s.Name)
	if err != nil {
		return fmt.Errorf("pgStudentRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgStudentRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgStudentRepository) UpdateGrade(ctx context.Context, name string, grade int) error {
	query := `UPDATE students SET grade = $1 WHERE name = $2`
	result, err := r.db.ExecContext(ctx, query, grade, name)
	if err != nil {
		return fmt.Errorf("pgStudentRepository.UpdateGrade: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgStudentRepository.UpdateGrade: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgStudentRepository) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM students WHERE name = $1`
	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("pgStudentRepository.DeleteByName: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgStudentRepository.DeleteByName: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
