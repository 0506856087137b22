package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/studentwell/supervision_scheduler/internal/model"
	"github.com/studentwell/supervision_scheduler/internal/repository"
)

// ErrInvalidCredentials возвращается при неверном email или пароле
var ErrInvalidCredentials = errors.New("invalid email or password")

// Стоимость bcrypt-хеширования
const bcryptCost = 12

// HashPassword хеширует пароль для хранения
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword сравнивает пароль с хешем
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type AuthService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login проверяет учётные данные и возвращает пользователя
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	// Не раскрываем отсутствует ли email или неверен пароль
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return user, nil
}
