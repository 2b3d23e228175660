package patients

import (
	"context"
	"fmt"
	"sync"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s cannot create patients", session.Role))
	}

	patient := &models.Patient{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Document:  request.Document,
		Email:     request.Email,
		Phone:     request.Phone,
		BirthDate: request.BirthDate,
	}
	patient.SetCreatedNow()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) GetPatients(ctx context.Context, session *models.Session) ([]responses.Patient, error) {
	// A patient only ever sees their own record.
	if !session.IsNotPatient() {
		patient, err := uc.PatientRepository.FindByID(ctx, session.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return []responses.Patient{}, nil
		}
		return []responses.Patient{*buildPatientResponse(patient)}, nil
	}

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *buildPatientResponse(&patients[i]))
	}
	return result, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	if !session.IsNotPatient() && session.PatientID != patientID {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("patient %s cannot view patient %s", session.PatientID, patientID))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if !session.IsNotPatient() && session.PatientID != patientID {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("patient %s cannot update patient %s", session.PatientID, patientID))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}

	patient.FirstName = request.FirstName
	patient.LastName = request.LastName
	patient.Document = request.Document
	patient.Email = request.Email
	patient.Phone = request.Phone
	patient.BirthDate = request.BirthDate
	patient.SetUpdatedNow()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID string) error {
	if !session.IsAdmin() {
		return exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s cannot delete patients", session.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}
	return uc.PatientRepository.DeletePatient(ctx, patientID)
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Document:  patient.Document,
		Email:     patient.Email,
		Phone:     patient.Phone,
		BirthDate: patient.BirthDate,
	}
}
