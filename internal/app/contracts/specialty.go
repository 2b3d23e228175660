package contracts

import (
	"context"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type SpecialtyRepository interface {
	CreateSpecialty(ctx context.Context, specialty *models.Specialty) (string, error)
	FindAll(ctx context.Context) ([]models.Specialty, error)
	FindByID(ctx context.Context, specialtyID string) (*models.Specialty, error)
	UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error
	DeleteSpecialty(ctx context.Context, specialtyID string) error
}

type SpecialtyUsecase interface {
	CreateSpecialty(ctx context.Context, request *requests.CreateSpecialty) (*responses.Specialty, error)
	GetSpecialties(ctx context.Context) ([]responses.Specialty, error)
	GetSpecialtyByID(ctx context.Context, specialtyID string) (*responses.Specialty, error)
	UpdateSpecialty(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*responses.Specialty, error)
	DeleteSpecialty(ctx context.Context, specialtyID string) error
}
