package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter(t *testing.T) {
	t.Run("Burst Exhaustion", func(t *testing.T) {
		limiter := newLoginLimiter(3)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("consulta"), "attempt %d should be allowed", i+1)
		}
		assert.False(t, limiter.Allow("consulta"), "attempt past the burst should be denied")
	})

	t.Run("Usernames Are Rate Limited Independently", func(t *testing.T) {
		limiter := newLoginLimiter(1)

		assert.True(t, limiter.Allow("primero"))
		assert.False(t, limiter.Allow("primero"), "second attempt for the same user should be denied")
		assert.True(t, limiter.Allow("segundo"), "a different user should not be affected")
	})

	t.Run("Non Positive Limit Falls Back To One", func(t *testing.T) {
		limiter := newLoginLimiter(0)

		assert.True(t, limiter.Allow("consulta"))
		assert.False(t, limiter.Allow("consulta"))
	})
}
