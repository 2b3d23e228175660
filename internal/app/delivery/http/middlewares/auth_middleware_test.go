package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionService struct {
	sessions map[string]*models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *stubSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func newTestMiddlewares(sessions map[string]*models.Session) *Middlewares {
	return New(
		zap.NewNop(),
		&stubSessionService{sessions: sessions},
		&config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		},
	)
}

func TestAuth(t *testing.T) {
	session := &models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		Username:  "consulta",
		Role:      constvars.RoleMedico,
	}
	m := newTestMiddlewares(map[string]*models.Session{"session-1": session})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := SessionFromContext(r.Context())
		assert.NoError(t, err, "session should be on the request context")
		assert.Equal(t, "user-1", got.UserID, "session should belong to the logged in user")

		sessionID, err := SessionIDFromContext(r.Context())
		assert.NoError(t, err, "session id should be on the request context")
		assert.Equal(t, "session-1", sessionID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Bearer Token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments/agenda", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Auth(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/appointments/agenda", nil)

		rr := httptest.NewRecorder()
		m.Auth(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Header Without Bearer Prefix", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/appointments/agenda", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abcdef")

		rr := httptest.NewRecorder()
		m.Auth(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token Signed With Wrong Secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-1", "another-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments/agenda", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Auth(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-gone", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments/agenda", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Auth(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	m := newTestMiddlewares(map[string]*models.Session{})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestWithSession := func(role string) *http.Request {
		req := httptest.NewRequest("POST", "/doctors", nil)
		session := &models.Session{SessionID: "s", UserID: "u", Role: role}
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		return req.WithContext(ctx)
	}

	t.Run("Role Allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		guard := m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)
		guard(okHandler).ServeHTTP(rr, requestWithSession(constvars.RoleAdministrador))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Role Denied", func(t *testing.T) {
		rr := httptest.NewRecorder()
		guard := m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)
		guard(okHandler).ServeHTTP(rr, requestWithSession(constvars.RolePaciente))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No Session On Context", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/doctors", nil)
		rr := httptest.NewRecorder()
		guard := m.RequireRoles(constvars.RoleAdministrador)
		guard(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
