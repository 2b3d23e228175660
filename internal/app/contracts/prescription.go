package contracts

import (
	"context"
	"mime/multipart"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeletePrescription(ctx context.Context, prescriptionID string) error
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error)
	GetPrescriptions(ctx context.Context, session *models.Session) ([]responses.Prescription, error)
	GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
	DeletePrescription(ctx context.Context, session *models.Session, prescriptionID string) error
	UploadAttachment(ctx context.Context, session *models.Session, prescriptionID string, file multipart.File, header *multipart.FileHeader) error
	GetAttachmentURL(ctx context.Context, session *models.Session, prescriptionID string) (*responses.AttachmentURL, error)
}
