package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "верный пароль", username: "admin", password: "admin123", want: true},
		{name: "неверный пароль", username: "admin", password: "wrong", want: false},
		{name: "неизвестный пользователь", username: "bob", password: "admin123", want: false},
		{name: "регистр имени важен", username: "Admin", password: "admin123", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

			mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.DefaultCredentials(), nil).Once()

			ok, err := service.Authenticate(context.Background(), tt.username, tt.password)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			mockUserRepo.AssertExpectations(t)
		})
	}

	t.Run("ошибка хранилища", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(nil, errors.New("permission denied")).Once()

		ok, err := service.Authenticate(context.Background(), "admin", "admin123")

		assert.False(t, ok)
		assert.ErrorContains(t, err, "permission denied")
	})
}

func TestUserService_Login(t *testing.T) {
	t.Run("успешный вход", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.Credentials{"alice": "pw"}, nil).Once()

		session, err := service.Login(context.Background(), "alice", "pw")

		require.NoError(t, err)
		assert.Equal(t, &domain.Session{Username: "alice"}, session)
	})

	t.Run("ошибка: неверные учетные данные", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.Credentials{"alice": "pw"}, nil).Once()

		session, err := service.Login(context.Background(), "alice", "nope")

		assert.Nil(t, session)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})

	t.Run("ошибка: слишком много попыток", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		limiter := NewLoginLimiter(1, 2)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, limiter)
		ctx := context.Background()

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.Credentials{"alice": "pw"}, nil).Twice()

		_, err := service.Login(ctx, "alice", "bad1")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		_, err = service.Login(ctx, "alice", "bad2")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		// даже верный пароль отклоняется без обращения к хранилищу
		_, err = service.Login(ctx, "alice", "pw")
		assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ограничение действует на одно имя", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		limiter := NewLoginLimiter(1, 1)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, limiter)
		ctx := context.Background()

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.Credentials{"alice": "pw", "bob": "pw"}, nil)

		_, err := service.Login(ctx, "alice", "bad")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		session, err := service.Login(ctx, "bob", "pw")
		require.NoError(t, err)
		assert.Equal(t, "bob", session.Username)
	})
}

func TestUserService_Register(t *testing.T) {
	t.Run("успешная регистрация", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.DefaultCredentials(), nil).Once()
		mockUserRepo.On("SaveUsers", mock.Anything, domain.Credentials{"admin": "admin123", "alice": "pw"}).Return(nil).Once()

		err := service.Register(context.Background(), "alice", "pw")

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь уже существует", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.Credentials{"admin": "admin123", "alice": "pw"}, nil).Once()

		err := service.Register(context.Background(), "alice", "other")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))
		mockUserRepo.AssertNotCalled(t, "SaveUsers", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		err := service.Register(context.Background(), "  ", "pw")

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeBadRequest, domainErr.Code)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка записи", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(&sync.Mutex{}, mockUserRepo, nil)

		mockUserRepo.On("LoadUsers", mock.Anything).Return(domain.DefaultCredentials(), nil).Once()
		mockUserRepo.On("SaveUsers", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		err := service.Register(context.Background(), "alice", "pw")

		assert.ErrorContains(t, err, "disk full")
	})
}

func TestLoginLimiter(t *testing.T) {
	t.Run("выключен при нулевом лимите", func(t *testing.T) {
		assert.Nil(t, NewLoginLimiter(0, 5))
	})

	t.Run("попытки сверх burst отклоняются", func(t *testing.T) {
		limiter := NewLoginLimiter(1, 2)

		assert.True(t, limiter.Allow("alice"))
		assert.True(t, limiter.Allow("alice"))
		assert.False(t, limiter.Allow("alice"))
	})

	t.Run("успешный вход сбрасывает счетчик", func(t *testing.T) {
		limiter := NewLoginLimiter(1, 1)

		assert.True(t, limiter.Allow("alice"))
		assert.False(t, limiter.Allow("alice"))

		limiter.Reset("alice")
		assert.True(t, limiter.Allow("alice"))
	})

	t.Run("параллельные попытки не превышают burst", func(t *testing.T) {
		limiter := NewLoginLimiter(1, 3)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("alice") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 3, allowed)
	})

	t.Run("восстановившиеся корзины не накапливаются", func(t *testing.T) {
		limiter := NewLoginLimiter(60, 1)
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		for i := 0; i < 1000; i++ {
			assert.True(t, limiter.Allow(fmt.Sprintf("ghost-%d", i)))
		}
		assert.Equal(t, 1000, limiter.tracked())

		now = now.Add(2 * time.Second)
		assert.True(t, limiter.Allow("ghost-new"))
		assert.Equal(t, 1, limiter.tracked())
	})

	t.Run("исчерпанная корзина не удаляется", func(t *testing.T) {
		limiter := NewLoginLimiter(1, 1)
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		assert.True(t, limiter.Allow("alice"))
		now = now.Add(time.Second)
		assert.True(t, limiter.Allow("bob"))

		assert.False(t, limiter.Allow("alice"))
		assert.Equal(t, 2, limiter.tracked())
	})
}
