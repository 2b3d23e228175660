package session

import (
	"context"
	"fmt"
	"time"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionTTL time.Duration) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		SessionTTL:      sessionTTL,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	session.ExpiresAt = time.Now().Add(svc.SessionTTL)
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	return svc.RedisRepository.Set(ctx, key, session, svc.SessionTTL)
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session %s not found", sessionID))
	}
	return svc.ParseSessionData(ctx, sessionData)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, key)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
