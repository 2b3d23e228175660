package contracts

import (
	"context"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindBySpecialtyID(ctx context.Context, specialtyID string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetDoctors(ctx context.Context) ([]responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}
