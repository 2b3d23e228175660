package contracts

import (
	"context"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
