package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
	"github.com/studentwell/supervision_scheduler/internal/service"
)

// Пароль всех демо-аккаунтов
const demoPassword = "password123"

type supervisorSeed struct {
	firstName   string
	lastName    string
	email       string
	officeHours string
	students    []studentSeed
}

type studentSeed struct {
	firstName string
	lastName  string
	email     string
	wellbeing int
}

var demoData = []supervisorSeed{
	{
		firstName:   "Alice",
		lastName:    "Morgan",
		email:       "alice.morgan@university.edu",
		officeHours: "Monday 09:00-11:00, Wednesday 14:00-16:00",
		students: []studentSeed{
			{"Ben", "Carter", "ben.carter@student.university.edu", 7},
			{"Chloe", "Dawson", "chloe.dawson@student.university.edu", 3},
		},
	},
	{
		firstName:   "David",
		lastName:    "Okafor",
		email:       "david.okafor@university.edu",
		officeHours: "Tuesday 10:00-12:00, Thursday 13:00-15:00",
		students: []studentSeed{
			{"Emma", "Fisher", "emma.fisher@student.university.edu", 9},
			{"Farid", "Hassan", "farid.hassan@student.university.edu", 5},
			{"Grace", "Ito", "grace.ito@student.university.edu", 2},
		},
	},
}

var demoTutor = struct {
	firstName string
	lastName  string
	email     string
}{"Sarah", "Linden", "sarah.linden@university.edu"}

// Seeder наполняет пустую базу демонстрационными данными
type Seeder struct {
	userRepo       *repository.UserRepository
	studentRepo    *repository.StudentRepository
	supervisorRepo *repository.SupervisorRepository
	logger         *zap.Logger
}

func NewSeeder(
	userRepo *repository.UserRepository,
	studentRepo *repository.StudentRepository,
	supervisorRepo *repository.SupervisorRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		supervisorRepo: supervisorRepo,
		logger:         logger,
	}
}

// Run создаёт демо-аккаунты, если база пустая. Повторный запуск ничего не делает
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.logger.Info("seed skipped, users already exist", zap.Int64("count", count))
		return nil
	}

	hash, err := service.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	// Старший тьютор
	tutor := &model.User{
		FirstName:    demoTutor.firstName,
		LastName:     demoTutor.lastName,
		Email:        demoTutor.email,
		PasswordHash: hash,
		Role:         model.RoleSeniorTutor,
	}
	if err := s.userRepo.Create(ctx, tutor); err != nil {
		return fmt.Errorf("create senior tutor: %w", err)
	}

	// Руководители со студентами
	for _, sup := range demoData {
		supUser := &model.User{
			FirstName:    sup.firstName,
			LastName:     sup.lastName,
			Email:        sup.email,
			PasswordHash: hash,
			Role:         model.RoleSupervisor,
		}
		if err := s.userRepo.Create(ctx, supUser); err != nil {
			return fmt.Errorf("create supervisor user %s: %w", sup.email, err)
		}

		supervisor := &model.Supervisor{
			UserID:      supUser.ID,
			OfficeHours: sup.officeHours,
		}
		if err := s.supervisorRepo.Create(ctx, supervisor); err != nil {
			return fmt.Errorf("create supervisor %s: %w", sup.email, err)
		}

		for _, st := range sup.students {
			stUser := &model.User{
				FirstName:    st.firstName,
				LastName:     st.lastName,
				Email:        st.email,
				PasswordHash: hash,
				Role:         model.RoleStudent,
			}
			if err := s.userRepo.Create(ctx, stUser); err != nil {
				return fmt.Errorf("create student user %s: %w", st.email, err)
			}

			student := &model.Student{
				UserID:         stUser.ID,
				SupervisorID:   supervisor.SupervisorID,
				WellbeingScore: st.wellbeing,
			}
			if err := s.studentRepo.Create(ctx, student); err != nil {
				return fmt.Errorf("create student %s: %w", st.email, err)
			}
		}
	}

	s.logger.Info("demo data seeded",
		zap.Int("supervisors", len(demoData)),
		zap.String("password", demoPassword))

	return nil
}
