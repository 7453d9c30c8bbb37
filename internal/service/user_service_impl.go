package service

import (
	"context"
	"strings"
	"sync"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/repository"
)

type userService struct {
	locker   sync.Locker
	userRepo repository.UserRepository
	limiter  *LoginLimiter
}

// NewUserService создает новый экземпляр UserService; limiter может быть nil
func NewUserService(locker sync.Locker, userRepo repository.UserRepository, limiter *LoginLimiter) UserService {
	return &userService{
		locker:   locker,
		userRepo: userRepo,
		limiter:  limiter,
	}
}

// Authenticate сравнивает пароль с сохраненным без хеширования
func (s *userService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	s.locker.Lock()
	defer s.locker.Unlock()

	users, err := s.userRepo.LoadUsers(ctx)
	if err != nil {
		return false, err
	}
	return users.Matches(username, password), nil
}

// Login создает сессию. Попытки ограничиваются limiter'ом по имени пользователя,
// успешный вход возвращает их все.
func (s *userService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if s.limiter != nil && !s.limiter.Allow(username) {
		return nil, domain.ErrTooManyAttempts
	}

	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		s.limiter.Reset(username)
	}
	return &domain.Session{Username: username}, nil
}

// Register не проверяет подтверждение пароля, это делает вызывающий код
func (s *userService) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return domain.NewBadRequestError("username is required")
	}

	s.locker.Lock()
	defer s.locker.Unlock()

	users, err := s.userRepo.LoadUsers(ctx)
	if err != nil {
		return err
	}
	if users.Has(username) {
		return domain.NewUserExistsError(username)
	}

	users[username] = password
	return s.userRepo.SaveUsers(ctx, users)
}
