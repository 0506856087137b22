package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studentwell/supervision_scheduler/internal/model"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `
	s.student_id, s.user_id, s.supervisor_id, s.wellbeing_score, s.last_status_update,
	u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role, u.created_at
`

func scanStudent(row pgx.Row) (*model.Student, error) {
	var student model.Student
	err := row.Scan(
		&student.StudentID,
		&student.UserID,
		&student.SupervisorID,
		&student.WellbeingScore,
		&student.LastStatusUpdate,
		&student.User.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.PasswordHash,
		&student.Role,
		&student.User.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create создаёт запись студента для существующего пользователя
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (user_id, supervisor_id, wellbeing_score)
		VALUES ($1, $2, $3)
		RETURNING student_id
	`

	err := r.pool.QueryRow(
		ctx, query,
		student.UserID,
		student.SupervisorID,
		student.WellbeingScore,
	).Scan(&student.StudentID)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID получает студента по ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.student_id = $1
	`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

// GetByUserID получает студента по ID пользователя
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*model.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1
	`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by user id: %w", err)
	}

	return student, nil
}

// GetBySupervisorID получает студентов руководителя, отсортированных по
// самочувствию (худшие первыми)
func (r *StudentRepository) GetBySupervisorID(ctx context.Context, supervisorID int64) ([]*model.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.supervisor_id = $1
		ORDER BY s.wellbeing_score ASC, s.student_id ASC
	`

	rows, err := r.pool.Query(ctx, query, supervisorID)
	if err != nil {
		return nil, fmt.Errorf("get students by supervisor: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetByWellbeingRange получает студентов с оценкой самочувствия в диапазоне
func (r *StudentRepository) GetByWellbeingRange(ctx context.Context, minScore, maxScore int) ([]*model.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.wellbeing_score BETWEEN $1 AND $2
		ORDER BY s.wellbeing_score ASC, s.student_id ASC
	`

	rows, err := r.pool.Query(ctx, query, minScore, maxScore)
	if err != nil {
		return nil, fmt.Errorf("get students by wellbeing range: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// GetAll получает всех студентов
func (r *StudentRepository) GetAll(ctx context.Context) ([]*model.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		ORDER BY s.student_id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// UpdateWellbeing обновляет оценку самочувствия студента
func (r *StudentRepository) UpdateWellbeing(ctx context.Context, studentID int64, score int, updatedAt time.Time) error {
	query := `
		UPDATE students
		SET wellbeing_score = $1, last_status_update = $2
		WHERE student_id = $3
	`

	result, err := r.pool.Exec(ctx, query, score, updatedAt, studentID)
	if err != nil {
		return fmt.Errorf("update wellbeing: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

func collectStudents(rows pgx.Rows) ([]*model.Student, error) {
	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return students, nil
}
