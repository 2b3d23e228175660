package contracts

import (
	"context"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type MedicationRepository interface {
	CreateMedication(ctx context.Context, medication *models.Medication) (string, error)
	FindAll(ctx context.Context) ([]models.Medication, error)
	FindByID(ctx context.Context, medicationID string) (*models.Medication, error)
	UpdateMedication(ctx context.Context, medication *models.Medication) error
	DeleteMedication(ctx context.Context, medicationID string) error
}

type MedicationUsecase interface {
	CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error)
	GetMedications(ctx context.Context) ([]responses.Medication, error)
	GetMedicationByID(ctx context.Context, medicationID string) (*responses.Medication, error)
	UpdateMedication(ctx context.Context, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error)
	DeleteMedication(ctx context.Context, medicationID string) error
}
