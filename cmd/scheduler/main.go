package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studentwell/supervision_scheduler/internal/app"
	"github.com/studentwell/supervision_scheduler/internal/config"
	"github.com/studentwell/supervision_scheduler/internal/controller/console"
	"github.com/studentwell/supervision_scheduler/internal/repository"
	"github.com/studentwell/supervision_scheduler/internal/seed"
	"github.com/studentwell/supervision_scheduler/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключаемся к базе
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Применяем миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	if err := migrator.Run(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	migrator.Close()

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	supervisorRepo := repository.NewSupervisorRepository(pool)
	meetingRepo := repository.NewMeetingRepository(pool)

	// Демо-данные для пустой базы
	if cfg.SeedDemoData {
		seeder := seed.NewSeeder(userRepo, studentRepo, supervisorRepo, logger)
		if err := seeder.Run(ctx); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Сервисы
	authService := service.NewAuthService(userRepo, logger)
	studentService := service.NewStudentService(studentRepo, logger)
	supervisorService := service.NewSupervisorService(supervisorRepo, studentRepo, logger)
	tutorService := service.NewTutorService(studentRepo, supervisorRepo, meetingRepo, logger)
	bookingService := service.NewBookingService(pool, supervisorRepo, meetingRepo, logger)

	// Фоновые задачи
	maintenance := app.NewMaintenance(supervisorRepo, logger)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	logger.Info("Starting supervision scheduler")

	controller := console.New(
		authService,
		studentService,
		supervisorService,
		tutorService,
		bookingService,
		logger,
		os.Stdin,
		os.Stdout,
	)

	if err := controller.Run(ctx); err != nil {
		logger.Sugar().Errorw("Console session ended with error", "error", err)
		os.Exit(1)
	}
}
