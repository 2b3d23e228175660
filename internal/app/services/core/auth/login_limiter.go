package auth

import (
	"sync"

	"golang.org/x/time/rate"
)

// loginLimiter throttles login attempts per username.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(attemptsPerMinute int) *loginLimiter {
	if attemptsPerMinute < 1 {
		attemptsPerMinute = 1
	}
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(attemptsPerMinute) / 60.0),
		burst:    attemptsPerMinute,
	}
}

func (l *loginLimiter) Allow(username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[username]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[username] = limiter
	}
	return limiter.Allow()
}
