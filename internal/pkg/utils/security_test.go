package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("recetas123")
	assert.NoError(t, err)
	assert.NotEqual(t, "recetas123", hash, "hash must not equal the plain password")

	assert.True(t, CheckPasswordHash("recetas123", hash))
	assert.False(t, CheckPasswordHash("otraclave", hash))
}

func TestSessionJWT(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-42", "secret", 1)
		assert.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, "secret")
		assert.NoError(t, err)
		assert.Equal(t, "session-42", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-42", "secret", 1)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := ParseSessionJWT("not.a.token", "secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-42", "secret", -1)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, "secret")
		assert.Error(t, err)
	})
}
