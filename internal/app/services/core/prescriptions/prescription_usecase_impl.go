package prescriptions

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sync"
	"time"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	MedicationRepository   contracts.MedicationRepository
	StorageService         contracts.StorageService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	medicationRepository contracts.MedicationRepository,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			MedicationRepository:   medicationRepository,
			StorageService:         storageService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", request.AppointmentID))
	}

	// Only the attending doctor prescribes; administrators may do it on
	// their behalf.
	if !session.IsNotDoctor() && session.DoctorID != appointment.DoctorID {
		return nil, exceptions.ErrNotAppointmentOwner(fmt.Errorf("doctor %s did not attend appointment %s", session.DoctorID, request.AppointmentID))
	}
	if session.IsNotDoctor() && !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s cannot prescribe", session.Role))
	}

	medication, err := uc.MedicationRepository.FindByID(ctx, request.MedicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, exceptions.ErrMedicationNotFound(fmt.Errorf("medication %s not found", request.MedicationID))
	}

	prescription := &models.Prescription{
		AppointmentID: request.AppointmentID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		MedicationID:  request.MedicationID,
		Quantity:      request.Quantity,
		Directions:    request.Directions,
	}
	prescription.SetCreatedNow()

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	return buildPrescriptionResponse(prescription, medication.Name), nil
}

func (uc *prescriptionUsecase) GetPrescriptions(ctx context.Context, session *models.Session) ([]responses.Prescription, error) {
	var (
		prescriptions []models.Prescription
		err           error
	)
	switch {
	case !session.IsNotDoctor():
		prescriptions, err = uc.PrescriptionRepository.FindByDoctor(ctx, session.DoctorID)
	case !session.IsNotPatient():
		prescriptions, err = uc.PrescriptionRepository.FindByPatient(ctx, session.PatientID)
	default:
		prescriptions, err = uc.PrescriptionRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	medicationNames, err := uc.medicationNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		result = append(result, *buildPrescriptionResponse(&prescriptions[i], medicationNames[prescriptions[i].MedicationID]))
	}
	return result, nil
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	prescription, err := uc.findOwned(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}

	medicationName := ""
	medication, err := uc.MedicationRepository.FindByID(ctx, prescription.MedicationID)
	if err == nil && medication != nil {
		medicationName = medication.Name
	}
	return buildPrescriptionResponse(prescription, medicationName), nil
}

func (uc *prescriptionUsecase) DeletePrescription(ctx context.Context, session *models.Session, prescriptionID string) error {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrPrescriptionNotFound(fmt.Errorf("prescription %s not found", prescriptionID))
	}

	if !session.IsAdmin() {
		if session.IsNotDoctor() || session.DoctorID != prescription.DoctorID {
			return exceptions.ErrNotAppointmentOwner(fmt.Errorf("prescription %s is not owned by this doctor", prescriptionID))
		}
	}

	if prescription.AttachmentObject != "" {
		if err := uc.StorageService.DeleteObject(ctx, prescription.AttachmentObject); err != nil {
			uc.Log.Warn("prescriptionUsecase.DeletePrescription could not remove attachment",
				zap.Error(err),
			)
		}
	}
	return uc.PrescriptionRepository.DeletePrescription(ctx, prescriptionID)
}

func (uc *prescriptionUsecase) UploadAttachment(ctx context.Context, session *models.Session, prescriptionID string, file multipart.File, header *multipart.FileHeader) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrPrescriptionNotFound(fmt.Errorf("prescription %s not found", prescriptionID))
	}
	if !session.IsAdmin() {
		if session.IsNotDoctor() || session.DoctorID != prescription.DoctorID {
			return exceptions.ErrNotAppointmentOwner(fmt.Errorf("prescription %s is not owned by this doctor", prescriptionID))
		}
	}

	maxSizeInMB := uc.InternalConfig.App.MinioAttachmentMaxUploadSizeInMB
	if header.Size > maxSizeInMB*1024*1024 {
		return exceptions.ErrFileTooLarge(fmt.Errorf("file size %d bytes", header.Size), maxSizeInMB)
	}

	objectName := utils.GenerateFileName("prescription", prescription.ID, filepath.Ext(header.Filename))
	contentType := header.Header.Get(constvars.HeaderContentType)
	if err := uc.StorageService.UploadObject(ctx, objectName, file, header.Size, contentType); err != nil {
		return err
	}

	prescription.AttachmentObject = objectName
	prescription.SetUpdatedNow()
	return uc.PrescriptionRepository.UpdatePrescription(ctx, prescription)
}

func (uc *prescriptionUsecase) GetAttachmentURL(ctx context.Context, session *models.Session, prescriptionID string) (*responses.AttachmentURL, error) {
	prescription, err := uc.findOwned(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription.AttachmentObject == "" {
		return nil, exceptions.ErrNoAttachment(fmt.Errorf("prescription %s", prescriptionID))
	}

	expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlExpiryTimeInHours) * time.Hour
	url, err := uc.StorageService.PresignedGetURL(ctx, prescription.AttachmentObject, expiry)
	if err != nil {
		return nil, err
	}
	return &responses.AttachmentURL{
		URL:       url,
		ExpiresIn: expiry.String(),
	}, nil
}

// findOwned loads a prescription and enforces view-scoping: patients see
// their own, doctors see those they wrote, staff see all.
func (uc *prescriptionUsecase) findOwned(ctx context.Context, session *models.Session, prescriptionID string) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotFound(fmt.Errorf("prescription %s not found", prescriptionID))
	}

	if !session.IsNotPatient() && session.PatientID != prescription.PatientID {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("patient %s cannot view prescription %s", session.PatientID, prescriptionID))
	}
	if !session.IsNotDoctor() && session.DoctorID != prescription.DoctorID {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("doctor %s cannot view prescription %s", session.DoctorID, prescriptionID))
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) medicationNamesByID(ctx context.Context) (map[string]string, error) {
	medications, err := uc.MedicationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(medications))
	for i := range medications {
		names[medications[i].ID] = medications[i].Name
	}
	return names, nil
}

func buildPrescriptionResponse(prescription *models.Prescription, medicationName string) *responses.Prescription {
	return &responses.Prescription{
		ID:             prescription.ID,
		AppointmentID:  prescription.AppointmentID,
		DoctorID:       prescription.DoctorID,
		PatientID:      prescription.PatientID,
		MedicationID:   prescription.MedicationID,
		MedicationName: medicationName,
		Quantity:       prescription.Quantity,
		Directions:     prescription.Directions,
		HasAttachment:  prescription.AttachmentObject != "",
	}
}
