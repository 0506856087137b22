package console

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/service"
)

// Controller связывает консольные меню с сервисами
type Controller struct {
	auth        *service.AuthService
	students    *service.StudentService
	supervisors *service.SupervisorService
	tutors      *service.TutorService
	bookings    *service.BookingService
	logger      *zap.Logger
	prompt      *Prompt
}

func New(
	auth *service.AuthService,
	students *service.StudentService,
	supervisors *service.SupervisorService,
	tutors *service.TutorService,
	bookings *service.BookingService,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Controller {
	return &Controller{
		auth:        auth,
		students:    students,
		supervisors: supervisors,
		tutors:      tutors,
		bookings:    bookings,
		logger:      logger,
		prompt:      NewPrompt(in, out),
	}
}

// Run запускает цикл входа в систему
func (c *Controller) Run(ctx context.Context) error {
	c.prompt.Header("Student Wellbeing & Supervision Scheduler")

	for {
		items := []string{"Log in", "Exit"}
		if c.prompt.Choice("Main menu:", items) == 1 {
			c.prompt.Println("Goodbye!")
			return nil
		}

		user, err := c.login(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			continue
		}

		switch user.Role {
		case model.RoleStudent:
			err = c.studentMenu(ctx, user)
		case model.RoleSupervisor:
			err = c.supervisorMenu(ctx, user)
		case model.RoleSeniorTutor:
			err = c.tutorMenu(ctx)
		default:
			c.prompt.Printf("Unknown role %q, contact an administrator.\n", user.Role)
		}

		if err != nil {
			return err
		}
	}
}

// login запрашивает учётные данные, nil без ошибки — неудачная попытка
func (c *Controller) login(ctx context.Context) (*model.User, error) {
	c.prompt.Header("Log in")

	email := c.prompt.Line("Email")
	password := c.prompt.Line("Password")

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.prompt.Println("Invalid email or password.")
			return nil, nil
		}
		return nil, err
	}

	c.prompt.Printf("\nWelcome, %s!\n", user.FullName())
	return user, nil
}
