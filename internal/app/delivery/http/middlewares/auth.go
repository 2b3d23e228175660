package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
)

// Auth resolves the bearer token into a live session and stores it on the
// request context for the handlers downstream.
func (m *Middlewares) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("missing %s header", constvars.HeaderAuthorization)))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token")))
			return
		}

		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles guards a subtree to the listed roles; it assumes Auth already
// ran.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session on request context")))
				return
			}
			if !session.HasRole(roles...) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s is not allowed here", session.Role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext retrieves the session stored by Auth.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("no session on request context"))
	}
	return session, nil
}

// SessionIDFromContext retrieves the raw session identifier stored by Auth.
func SessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrSessionInvalid(fmt.Errorf("no session id on request context"))
	}
	return sessionID, nil
}
