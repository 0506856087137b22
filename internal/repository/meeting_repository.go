package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

// ErrSlotTaken возвращается когда слот уже занят на момент записи.
// Проверка валидатора носит рекомендательный характер, уникальный индекс
// (supervisor_id, meeting_date, start_min) — последний рубеж.
var ErrSlotTaken = errors.New("meeting slot already taken")

const uniqueViolationCode = "23505"

type MeetingRepository struct {
	db Querier
}

func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: pool}
}

// WithTx возвращает копию репозитория, выполняющую запросы в транзакции
func (r *MeetingRepository) WithTx(tx pgx.Tx) *MeetingRepository {
	return &MeetingRepository{db: tx}
}

// Create создаёт встречу
func (r *MeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	if meeting.Reference == uuid.Nil {
		meeting.Reference = uuid.New()
	}

	query := `
		INSERT INTO meetings (reference, student_id, supervisor_id, meeting_date, start_min, end_min, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		meeting.Reference,
		meeting.StudentID,
		meeting.SupervisorID,
		meeting.MeetingDate,
		int(meeting.StartTime),
		int(meeting.EndTime),
		meeting.Notes,
	).Scan(&meeting.ID, &meeting.CreatedAt, &meeting.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrSlotTaken
		}
		return fmt.Errorf("create meeting: %w", err)
	}

	return nil
}

const meetingColumns = `
	id, reference, student_id, supervisor_id, meeting_date, start_min, end_min, notes, created_at, updated_at
`

func scanMeeting(row pgx.Row) (*model.Meeting, error) {
	var (
		meeting  model.Meeting
		startMin int
		endMin   int
	)
	err := row.Scan(
		&meeting.ID,
		&meeting.Reference,
		&meeting.StudentID,
		&meeting.SupervisorID,
		&meeting.MeetingDate,
		&startMin,
		&endMin,
		&meeting.Notes,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	meeting.StartTime = schedule.TimeOfDay(startMin)
	meeting.EndTime = schedule.TimeOfDay(endMin)
	return &meeting, nil
}

// GetByID получает встречу по ID
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*model.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE id = $1
	`

	meeting, err := scanMeeting(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get meeting by id: %w", err)
	}

	return meeting, nil
}

// GetByStudentID получает все встречи студента
func (r *MeetingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE student_id = $1
		ORDER BY meeting_date ASC, start_min ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get meetings by student: %w", err)
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// GetBySupervisorID получает все встречи руководителя
func (r *MeetingRepository) GetBySupervisorID(ctx context.Context, supervisorID int64) ([]*model.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE supervisor_id = $1
		ORDER BY meeting_date ASC, start_min ASC
	`

	rows, err := r.db.Query(ctx, query, supervisorID)
	if err != nil {
		return nil, fmt.Errorf("get meetings by supervisor: %w", err)
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// GetBySupervisorAndDate получает встречи руководителя на конкретную дату
func (r *MeetingRepository) GetBySupervisorAndDate(ctx context.Context, supervisorID int64, date time.Time) ([]*model.Meeting, error) {
	query := `
		SELECT ` + meetingColumns + `
		FROM meetings
		WHERE supervisor_id = $1 AND meeting_date = $2::date
		ORDER BY start_min ASC
	`

	rows, err := r.db.Query(ctx, query, supervisorID, date)
	if err != nil {
		return nil, fmt.Errorf("get meetings by supervisor and date: %w", err)
	}
	defer rows.Close()

	return collectMeetings(rows)
}

// CountByStudentID возвращает количество встреч студента
func (r *MeetingRepository) CountByStudentID(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM meetings WHERE student_id = $1`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count meetings by student: %w", err)
	}
	return count, nil
}

// Delete удаляет встречу
func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meeting not found")
	}

	return nil
}

// BookedIntervals реализует schedule.MeetingSource
func (r *MeetingRepository) BookedIntervals(ctx context.Context, supervisorID int64, date time.Time) ([]schedule.Interval, error) {
	query := `
		SELECT start_min, end_min
		FROM meetings
		WHERE supervisor_id = $1 AND meeting_date = $2::date
		ORDER BY start_min ASC
	`

	rows, err := r.db.Query(ctx, query, supervisorID, date)
	if err != nil {
		return nil, fmt.Errorf("get booked intervals: %w", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var startMin, endMin int
		if err := rows.Scan(&startMin, &endMin); err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}
		intervals = append(intervals, schedule.Interval{
			Start: schedule.TimeOfDay(startMin),
			End:   schedule.TimeOfDay(endMin),
		})
	}

	// Оборванный список интервалов пропустил бы реальный конфликт,
	// поэтому ошибка итерации здесь фатальна
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked intervals: %w", err)
	}

	return intervals, nil
}

func collectMeetings(rows pgx.Rows) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, meeting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return meetings, nil
}
