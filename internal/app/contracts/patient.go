package contracts

import (
	"context"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatients(ctx context.Context, session *models.Session) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, session *models.Session, patientID string) error
}
