package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/repository"
)

// Maintenance управляет фоновыми задачами обслуживания
type Maintenance struct {
	supervisorRepo *repository.SupervisorRepository
	logger         *zap.Logger
	stopChan       chan struct{}
}

// NewMaintenance создаёт новый обработчик фоновых задач
func NewMaintenance(supervisorRepo *repository.SupervisorRepository, logger *zap.Logger) *Maintenance {
	return &Maintenance{
		supervisorRepo: supervisorRepo,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (m *Maintenance) Start(ctx context.Context) {
	m.logger.Info("Starting background maintenance")

	go m.runCounterResetTask(ctx)
}

// Stop останавливает фоновые задачи
func (m *Maintenance) Stop() {
	m.logger.Info("Stopping background maintenance")
	close(m.stopChan)
}

// runCounterResetTask периодически обнуляет месячные счётчики руководителей
func (m *Maintenance) runCounterResetTask(ctx context.Context) {
	// Первый запуск сразу при старте
	m.resetCounters(ctx)

	// Достаточно проверять раз в час, сброс срабатывает при смене месяца
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.resetCounters(ctx)
		case <-m.stopChan:
			m.logger.Info("Counter reset task stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Counter reset task cancelled")
			return
		}
	}
}

// resetCounters обнуляет счётчики у руководителей с прошлого месяца
func (m *Maintenance) resetCounters(ctx context.Context) {
	affected, err := m.supervisorRepo.ResetMonthlyCounters(ctx)
	if err != nil {
		m.logger.Error("Failed to reset monthly counters", zap.Error(err))
		return
	}

	if affected > 0 {
		m.logger.Info("Monthly interaction counters reset",
			zap.Int64("supervisors", affected))
	}
}
