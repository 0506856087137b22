package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

type SupervisorRepository struct {
	db Querier
}

func NewSupervisorRepository(pool *pgxpool.Pool) *SupervisorRepository {
	return &SupervisorRepository{db: pool}
}

// WithTx возвращает копию репозитория, выполняющую запросы в транзакции
func (r *SupervisorRepository) WithTx(tx pgx.Tx) *SupervisorRepository {
	return &SupervisorRepository{db: tx}
}

const supervisorColumns = `
	s.supervisor_id, s.user_id, s.office_hours, s.last_office_hours_update,
	s.last_wellbeing_check, s.meetings_booked_this_month, s.wellbeing_checks_this_month,
	u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role, u.created_at
`

func scanSupervisor(row pgx.Row) (*model.Supervisor, error) {
	var supervisor model.Supervisor
	err := row.Scan(
		&supervisor.SupervisorID,
		&supervisor.UserID,
		&supervisor.OfficeHours,
		&supervisor.LastOfficeHoursUpdate,
		&supervisor.LastWellbeingCheck,
		&supervisor.MeetingsBookedThisMonth,
		&supervisor.WellbeingChecksThisMonth,
		&supervisor.User.ID,
		&supervisor.FirstName,
		&supervisor.LastName,
		&supervisor.Email,
		&supervisor.PasswordHash,
		&supervisor.Role,
		&supervisor.User.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

// Create создаёт запись руководителя для существующего пользователя
func (r *SupervisorRepository) Create(ctx context.Context, supervisor *model.Supervisor) error {
	query := `
		INSERT INTO supervisors (user_id, office_hours)
		VALUES ($1, $2)
		RETURNING supervisor_id
	`

	err := r.db.QueryRow(
		ctx, query,
		supervisor.UserID,
		supervisor.OfficeHours,
	).Scan(&supervisor.SupervisorID)

	if err != nil {
		return fmt.Errorf("create supervisor: %w", err)
	}

	return nil
}

// GetByID получает руководителя по ID
func (r *SupervisorRepository) GetByID(ctx context.Context, id int64) (*model.Supervisor, error) {
	query := `
		SELECT ` + supervisorColumns + `
		FROM supervisors s
		JOIN users u ON s.user_id = u.id
		WHERE s.supervisor_id = $1
	`

	supervisor, err := scanSupervisor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get supervisor by id: %w", err)
	}

	return supervisor, nil
}

// GetByUserID получает руководителя по ID пользователя
func (r *SupervisorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Supervisor, error) {
	query := `
		SELECT ` + supervisorColumns + `
		FROM supervisors s
		JOIN users u ON s.user_id = u.id
		WHERE s.user_id = $1
	`

	supervisor, err := scanSupervisor(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get supervisor by user id: %w", err)
	}

	return supervisor, nil
}

// GetAll получает всех руководителей
func (r *SupervisorRepository) GetAll(ctx context.Context) ([]*model.Supervisor, error) {
	query := `
		SELECT ` + supervisorColumns + `
		FROM supervisors s
		JOIN users u ON s.user_id = u.id
		ORDER BY s.supervisor_id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all supervisors: %w", err)
	}
	defer rows.Close()

	var supervisors []*model.Supervisor
	for rows.Next() {
		supervisor, err := scanSupervisor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supervisor: %w", err)
		}
		supervisors = append(supervisors, supervisor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate supervisors: %w", err)
	}

	return supervisors, nil
}

// UpdateOfficeHours заменяет офисные часы целиком и фиксирует время обновления
func (r *SupervisorRepository) UpdateOfficeHours(ctx context.Context, supervisorID int64, officeHours string) error {
	query := `
		UPDATE supervisors
		SET office_hours = $1, last_office_hours_update = now()
		WHERE supervisor_id = $2
	`

	result, err := r.db.Exec(ctx, query, officeHours, supervisorID)
	if err != nil {
		return fmt.Errorf("update office hours: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("supervisor not found")
	}

	return nil
}

// RecordMeetingBooked увеличивает месячный счётчик встреч
func (r *SupervisorRepository) RecordMeetingBooked(ctx context.Context, supervisorID int64) error {
	query := `
		UPDATE supervisors
		SET meetings_booked_this_month = meetings_booked_this_month + 1
		WHERE supervisor_id = $1
	`

	_, err := r.db.Exec(ctx, query, supervisorID)
	if err != nil {
		return fmt.Errorf("record meeting booked: %w", err)
	}

	return nil
}

// RecordWellbeingCheck увеличивает месячный счётчик проверок самочувствия
func (r *SupervisorRepository) RecordWellbeingCheck(ctx context.Context, supervisorID int64, checkedAt time.Time) error {
	query := `
		UPDATE supervisors
		SET wellbeing_checks_this_month = wellbeing_checks_this_month + 1,
		    last_wellbeing_check = $1
		WHERE supervisor_id = $2
	`

	result, err := r.db.Exec(ctx, query, checkedAt, supervisorID)
	if err != nil {
		return fmt.Errorf("record wellbeing check: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("supervisor not found")
	}

	return nil
}

// ResetMonthlyCounters обнуляет месячные счётчики при смене месяца
func (r *SupervisorRepository) ResetMonthlyCounters(ctx context.Context) (int64, error) {
	query := `
		UPDATE supervisors
		SET meetings_booked_this_month = 0,
		    wellbeing_checks_this_month = 0,
		    counters_reset_at = now()
		WHERE date_trunc('month', counters_reset_at) <> date_trunc('month', now())
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("reset monthly counters: %w", err)
	}

	return result.RowsAffected(), nil
}

// ScheduleByID реализует schedule.SupervisorSource
func (r *SupervisorRepository) ScheduleByID(ctx context.Context, supervisorID int64) (*schedule.SupervisorSchedule, error) {
	supervisor, err := r.GetByID(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	if supervisor == nil {
		return nil, nil
	}

	return &schedule.SupervisorSchedule{
		SupervisorID: supervisor.SupervisorID,
		OfficeHours:  supervisor.OfficeHours,
	}, nil
}
