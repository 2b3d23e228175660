package doctors

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

type doctorUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	SpecialtyRepository contracts.SpecialtyRepository
	Log                 *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	specialtyRepository contracts.SpecialtyRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:    doctorRepository,
			SpecialtyRepository: specialtyRepository,
			Log:                 logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, request.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", request.SpecialtyID))
	}

	doctor := &models.Doctor{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		SpecialtyID: request.SpecialtyID,
	}
	doctor.SetCreatedNow()

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	return buildDoctorResponse(doctor, specialty.Name), nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	specialtyNames, err := uc.specialtyNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, *buildDoctorResponse(&doctors[i], specialtyNames[doctors[i].SpecialtyID]))
	}
	return result, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}

	specialtyName := ""
	specialty, err := uc.SpecialtyRepository.FindByID(ctx, doctor.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if specialty != nil {
		specialtyName = specialty.Name
	}
	return buildDoctorResponse(doctor, specialtyName), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, request.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", request.SpecialtyID))
	}

	doctor.FirstName = request.FirstName
	doctor.LastName = request.LastName
	doctor.Email = request.Email
	doctor.SpecialtyID = request.SpecialtyID
	doctor.SetUpdatedNow()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return buildDoctorResponse(doctor, specialty.Name), nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}
	return uc.DoctorRepository.DeleteDoctor(ctx, doctorID)
}

func (uc *doctorUsecase) specialtyNamesByID(ctx context.Context) (map[string]string, error) {
	specialties, err := uc.SpecialtyRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(specialties))
	for i := range specialties {
		names[specialties[i].ID] = specialties[i].Name
	}
	return names, nil
}

func buildDoctorResponse(doctor *models.Doctor, specialtyName string) *responses.Doctor {
	return &responses.Doctor{
		ID:            doctor.ID,
		FirstName:     doctor.FirstName,
		LastName:      doctor.LastName,
		Email:         doctor.Email,
		SpecialtyID:   doctor.SpecialtyID,
		SpecialtyName: specialtyName,
	}
}
