package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
	"github.com/studentwell/supervision_scheduler/internal/schedule"
)

// Напоминания считаются просроченными через неделю
const staleAfter = 7 * 24 * time.Hour

type SupervisorService struct {
	supervisorRepo *repository.SupervisorRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger
}

func NewSupervisorService(
	supervisorRepo *repository.SupervisorRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *SupervisorService {
	return &SupervisorService{
		supervisorRepo: supervisorRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// GetByUserID получает профиль руководителя по пользователю
func (s *SupervisorService) GetByUserID(ctx context.Context, userID int64) (*model.Supervisor, error) {
	return s.supervisorRepo.GetByUserID(ctx, userID)
}

// Students получает студентов руководителя, худшее самочувствие первым
func (s *SupervisorService) Students(ctx context.Context, supervisorID int64) ([]*model.Student, error) {
	return s.studentRepo.GetBySupervisorID(ctx, supervisorID)
}

// StudentDetails получает карточку студента
func (s *SupervisorService) StudentDetails(ctx context.Context, studentID int64) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// UpdateOfficeHours парсит и проверяет новые офисные часы и сохраняет их
// в каноничном формате. Правило "ровно два блока по два часа" действует
// только здесь, не при генерации слотов
func (s *SupervisorService) UpdateOfficeHours(ctx context.Context, supervisorID int64, text string) (schedule.Spec, error) {
	spec := schedule.ParseSpec(text)

	if err := schedule.CheckOfficeHoursPolicy(spec); err != nil {
		return schedule.Spec{}, fmt.Errorf("check office hours: %w", err)
	}

	err := s.supervisorRepo.UpdateOfficeHours(ctx, supervisorID, spec.Format())
	if err != nil {
		return schedule.Spec{}, fmt.Errorf("update office hours: %w", err)
	}

	s.logger.Info("Office hours updated",
		zap.Int64("supervisor_id", supervisorID),
		zap.String("office_hours", spec.Format()),
	)

	return spec, nil
}

// RecordWellbeingCheck фиксирует проведённую проверку самочувствия
func (s *SupervisorService) RecordWellbeingCheck(ctx context.Context, supervisorID int64) error {
	err := s.supervisorRepo.RecordWellbeingCheck(ctx, supervisorID, time.Now())
	if err != nil {
		return fmt.Errorf("record wellbeing check: %w", err)
	}

	s.logger.Info("Wellbeing check recorded",
		zap.Int64("supervisor_id", supervisorID),
	)

	return nil
}

// NeedsOfficeHoursUpdate проверяет не устарели ли офисные часы
func (s *SupervisorService) NeedsOfficeHoursUpdate(supervisor *model.Supervisor) bool {
	return isStale(supervisor.LastOfficeHoursUpdate)
}

// NeedsWellbeingCheck проверяет не пора ли провести проверку самочувствия
func (s *SupervisorService) NeedsWellbeingCheck(supervisor *model.Supervisor) bool {
	return isStale(supervisor.LastWellbeingCheck)
}

func isStale(last *time.Time) bool {
	return last == nil || time.Since(*last) >= staleAfter
}
