package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter ограничивает число попыток входа для каждого имени пользователя.
// Каждая попытка расходует токен, успешный вход сбрасывает счетчик.
type LoginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
	now      func() time.Time
}

// NewLoginLimiter возвращает nil, если perMinute <= 0: ограничение выключено
func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &LoginLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
		now:      time.Now,
	}
}

// Allow резервирует попытку входа. Проверка и расход токена выполняются
// под одной блокировкой, поэтому параллельные попытки не превышают burst.
func (l *LoginLimiter) Allow(username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	limiter, ok := l.limiters[username]
	if !ok {
		l.evictRefilled(now)
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[username] = limiter
	}
	return limiter.AllowN(now, 1)
}

func (l *LoginLimiter) Reset(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.limiters, username)
}

// evictRefilled удаляет корзины, восстановившиеся до burst: они ничем
// не отличаются от новой корзины
func (l *LoginLimiter) evictRefilled(now time.Time) {
	for username, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, username)
		}
	}
}

func (l *LoginLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}
