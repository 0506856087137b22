package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
)

// StudentOverview строка сводной таблицы старшего тьютора
type StudentOverview struct {
	Student  *model.Student
	Meetings int64
}

// SupervisorOverview строка сводки активности руководителей
type SupervisorOverview struct {
	Supervisor *model.Supervisor
	Total      int
	Active     bool
}

type TutorService struct {
	studentRepo    *repository.StudentRepository
	supervisorRepo *repository.SupervisorRepository
	meetingRepo    *repository.MeetingRepository
	logger         *zap.Logger
}

func NewTutorService(
	studentRepo *repository.StudentRepository,
	supervisorRepo *repository.SupervisorRepository,
	meetingRepo *repository.MeetingRepository,
	logger *zap.Logger,
) *TutorService {
	return &TutorService{
		studentRepo:    studentRepo,
		supervisorRepo: supervisorRepo,
		meetingRepo:    meetingRepo,
		logger:         logger,
	}
}

// StudentsOverview получает всех студентов с количеством встреч
func (s *TutorService) StudentsOverview(ctx context.Context) ([]StudentOverview, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all students: %w", err)
	}

	overview := make([]StudentOverview, 0, len(students))
	for _, student := range students {
		count, err := s.meetingRepo.CountByStudentID(ctx, student.StudentID)
		if err != nil {
			return nil, fmt.Errorf("count meetings: %w", err)
		}
		overview = append(overview, StudentOverview{Student: student, Meetings: count})
	}

	return overview, nil
}

// SupervisorsOverview получает активность руководителей за текущий месяц
func (s *TutorService) SupervisorsOverview(ctx context.Context) ([]SupervisorOverview, error) {
	supervisors, err := s.supervisorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all supervisors: %w", err)
	}

	overview := make([]SupervisorOverview, 0, len(supervisors))
	for _, supervisor := range supervisors {
		overview = append(overview, SupervisorOverview{
			Supervisor: supervisor,
			Total:      supervisor.MeetingsBookedThisMonth + supervisor.WellbeingChecksThisMonth,
			Active:     supervisor.IsActiveThisMonth(),
		})
	}

	return overview, nil
}

// StudentsByWellbeingRange фильтрует студентов по диапазону самочувствия
func (s *TutorService) StudentsByWellbeingRange(ctx context.Context, minScore, maxScore int) ([]*model.Student, error) {
	if minScore < model.WellbeingMin || maxScore > model.WellbeingMax || minScore > maxScore {
		return nil, fmt.Errorf("wellbeing range must lie between %d and %d", model.WellbeingMin, model.WellbeingMax)
	}

	return s.studentRepo.GetByWellbeingRange(ctx, minScore, maxScore)
}
