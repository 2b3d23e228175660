package session

import (
	"context"
	"testing"
	"time"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

type memoryRedis struct {
	values map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: make(map[string]string)}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(data)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Increment(ctx context.Context, key string) error { return nil }

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	return true, m.Set(ctx, key, value, exp)
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And Get", func(t *testing.T) {
		svc := NewSessionService(newMemoryRedis(), time.Hour)
		session := &models.Session{
			SessionID: "session-1",
			UserID:    "user-1",
			Username:  "consulta",
			Role:      constvars.RolePaciente,
			PatientID: "patient-1",
		}

		err := svc.CreateSession(ctx, session)
		assert.NoError(t, err)
		assert.False(t, session.ExpiresAt.IsZero(), "creating a session stamps its expiry")

		got, err := svc.GetSession(ctx, "session-1")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)
		assert.Equal(t, constvars.RolePaciente, got.Role)
		assert.Equal(t, "patient-1", got.PatientID)
	})

	t.Run("Missing Session", func(t *testing.T) {
		svc := NewSessionService(newMemoryRedis(), time.Hour)

		_, err := svc.GetSession(ctx, "nunca-creada")
		assert.Error(t, err)
	})

	t.Run("Delete Invalidates", func(t *testing.T) {
		svc := NewSessionService(newMemoryRedis(), time.Hour)
		session := &models.Session{SessionID: "session-2", UserID: "user-2", Role: constvars.RoleMedico}

		assert.NoError(t, svc.CreateSession(ctx, session))
		assert.NoError(t, svc.DeleteSession(ctx, "session-2"))

		_, err := svc.GetSession(ctx, "session-2")
		assert.Error(t, err)
	})

	t.Run("Corrupt Session Data", func(t *testing.T) {
		svc := NewSessionService(newMemoryRedis(), time.Hour)

		_, err := svc.ParseSessionData(ctx, "{not json")
		assert.Error(t, err)
	})
}
