package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

type BookingService struct {
	pool           *pgxpool.Pool
	supervisorRepo *repository.SupervisorRepository
	meetingRepo    *repository.MeetingRepository
	planner        *schedule.Planner
	validator      *schedule.Validator
	logger         *zap.Logger
}

func NewBookingService(
	pool *pgxpool.Pool,
	supervisorRepo *repository.SupervisorRepository,
	meetingRepo *repository.MeetingRepository,
	logger *zap.Logger,
) *BookingService {
	// Репозитории реализуют источники данных движка напрямую
	return &BookingService{
		pool:           pool,
		supervisorRepo: supervisorRepo,
		meetingRepo:    meetingRepo,
		planner:        schedule.NewPlanner(supervisorRepo, meetingRepo),
		validator:      schedule.NewValidator(supervisorRepo, meetingRepo),
		logger:         logger,
	}
}

// AvailableDays возвращает открытые слоты руководителя на ближайшие две недели
func (s *BookingService) AvailableDays(ctx context.Context, supervisorID int64) ([]schedule.DayAvailability, error) {
	return s.planner.Plan(ctx, supervisorID, schedule.PlanOptions{})
}

// Book повторно валидирует выбранный слот на свежих данных и создаёт встречу.
// Отказ валидатора — нормальный результат (verdict), не ошибка.
func (s *BookingService) Book(ctx context.Context, studentID, supervisorID int64, slot schedule.Slot, notes string) (*model.Meeting, schedule.Verdict, error) {
	interval := slot.Interval()
	candidate := &schedule.Candidate{
		SupervisorID: supervisorID,
		Date:         slot.Start,
		Start:        interval.Start,
		End:          interval.End,
	}

	verdict, err := s.validator.Validate(ctx, candidate)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("validate meeting: %w", err)
	}
	if !verdict.OK {
		return nil, verdict, nil
	}

	meeting := &model.Meeting{
		StudentID:    studentID,
		SupervisorID: supervisorID,
		MeetingDate:  slot.Start,
		StartTime:    interval.Start,
		EndTime:      interval.End,
		Notes:        notes,
	}

	// Запись встречи и счётчик руководителя меняются в одной транзакции
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = s.meetingRepo.WithTx(tx).Create(ctx, meeting)
	if err != nil {
		// Слот заняли между проверкой и записью — тот же отказ,
		// что и у шестого гейта валидатора
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, schedule.Verdict{Reason: schedule.ReasonOverlap}, nil
		}
		return nil, schedule.Verdict{}, fmt.Errorf("create meeting: %w", err)
	}

	err = s.supervisorRepo.WithTx(tx).RecordMeetingBooked(ctx, supervisorID)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("record meeting booked: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Meeting booked",
		zap.Int64("meeting_id", meeting.ID),
		zap.String("reference", meeting.Reference.String()),
		zap.Int64("student_id", studentID),
		zap.Int64("supervisor_id", supervisorID),
		zap.Time("date", meeting.MeetingDate),
		zap.String("start", meeting.StartTime.String()),
	)

	return meeting, verdict, nil
}

// Cancel отменяет встречу
func (s *BookingService) Cancel(ctx context.Context, meetingID int64) error {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("get meeting: %w", err)
	}

	if meeting == nil {
		return fmt.Errorf("meeting not found")
	}

	err = s.meetingRepo.Delete(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	s.logger.Info("Meeting canceled",
		zap.Int64("meeting_id", meetingID),
		zap.Int64("supervisor_id", meeting.SupervisorID),
	)

	return nil
}

// Reschedule бронирует новый слот и затем удаляет старую встречу.
// Порядок как в исходном сценарии: сначала новая запись, потом удаление
func (s *BookingService) Reschedule(ctx context.Context, meetingID int64, slot schedule.Slot, notes string) (*model.Meeting, schedule.Verdict, error) {
	old, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("get meeting: %w", err)
	}

	if old == nil {
		return nil, schedule.Verdict{}, fmt.Errorf("meeting not found")
	}

	meeting, verdict, err := s.Book(ctx, old.StudentID, old.SupervisorID, slot, notes)
	if err != nil || !verdict.OK {
		return nil, verdict, err
	}

	err = s.meetingRepo.Delete(ctx, old.ID)
	if err != nil {
		return nil, schedule.Verdict{}, fmt.Errorf("delete old meeting: %w", err)
	}

	s.logger.Info("Meeting rescheduled",
		zap.Int64("old_meeting_id", old.ID),
		zap.Int64("new_meeting_id", meeting.ID),
	)

	return meeting, verdict, nil
}

// MeetingsByStudent получает все встречи студента
func (s *BookingService) MeetingsByStudent(ctx context.Context, studentID int64) ([]*model.Meeting, error) {
	return s.meetingRepo.GetByStudentID(ctx, studentID)
}

// MeetingsBySupervisor получает все встречи руководителя
func (s *BookingService) MeetingsBySupervisor(ctx context.Context, supervisorID int64) ([]*model.Meeting, error) {
	return s.meetingRepo.GetBySupervisorID(ctx, supervisorID)
}
