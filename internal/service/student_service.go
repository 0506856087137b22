package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
)

type StudentService struct {
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewStudentService(studentRepo *repository.StudentRepository, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetByUserID получает профиль студента по пользователю
func (s *StudentService) GetByUserID(ctx context.Context, userID int64) (*model.Student, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

// UpdateWellbeing обновляет оценку самочувствия студента (0-10)
func (s *StudentService) UpdateWellbeing(ctx context.Context, studentID int64, score int) error {
	if score < model.WellbeingMin || score > model.WellbeingMax {
		return fmt.Errorf("wellbeing score must be between %d and %d", model.WellbeingMin, model.WellbeingMax)
	}

	err := s.studentRepo.UpdateWellbeing(ctx, studentID, score, time.Now())
	if err != nil {
		return fmt.Errorf("update wellbeing: %w", err)
	}

	s.logger.Info("Wellbeing score updated",
		zap.Int64("student_id", studentID),
		zap.Int("score", score),
	)

	return nil
}
