package specialties

import (
	"context"
	"fmt"
	"sync"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/app/services/core/scheduling"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type specialtyUsecase struct {
	SpecialtyRepository contracts.SpecialtyRepository
	Log                 *zap.Logger
}

var (
	specialtyUsecaseInstance contracts.SpecialtyUsecase
	onceSpecialtyUsecase     sync.Once
)

func NewSpecialtyUsecase(specialtyRepository contracts.SpecialtyRepository, logger *zap.Logger) contracts.SpecialtyUsecase {
	onceSpecialtyUsecase.Do(func() {
		specialtyUsecaseInstance = &specialtyUsecase{
			SpecialtyRepository: specialtyRepository,
			Log:                 logger,
		}
	})
	return specialtyUsecaseInstance
}

// validateSchedule rejects working-day expressions and windows the slot
// engine could not serve. The check runs at write time; data that predates
// it is still read fail-closed.
func validateSchedule(workingDays, windowStart, windowEnd string) error {
	if _, err := scheduling.ParseDayRule(workingDays); err != nil {
		return exceptions.ErrScheduleExpressionInvalid(err)
	}
	window := scheduling.ResolveWindow(windowStart, windowEnd)
	if window.Empty() {
		return exceptions.ErrSpecialtyWindowInvalid(fmt.Errorf("window %s-%s has no bookable hours", windowStart, windowEnd))
	}
	// Slots start on whole hours, so a mid-hour bound would offer starts
	// the booking flow rejects.
	if window.Start.M != 0 || window.End.M != 0 {
		return exceptions.ErrSpecialtyWindowInvalid(fmt.Errorf("window %s-%s must use whole-hour bounds", windowStart, windowEnd))
	}
	return nil
}

func (uc *specialtyUsecase) CreateSpecialty(ctx context.Context, request *requests.CreateSpecialty) (*responses.Specialty, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("specialtyUsecase.CreateSpecialty called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := validateSchedule(request.WorkingDays, request.WindowStart, request.WindowEnd); err != nil {
		return nil, err
	}

	specialty := &models.Specialty{
		Name:        request.Name,
		WorkingDays: request.WorkingDays,
		WindowStart: request.WindowStart,
		WindowEnd:   request.WindowEnd,
	}
	specialty.SetCreatedNow()

	specialtyID, err := uc.SpecialtyRepository.CreateSpecialty(ctx, specialty)
	if err != nil {
		uc.Log.Error("specialtyUsecase.CreateSpecialty error creating specialty",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	specialty.ID = specialtyID

	return buildSpecialtyResponse(specialty), nil
}

func (uc *specialtyUsecase) GetSpecialties(ctx context.Context) ([]responses.Specialty, error) {
	specialties, err := uc.SpecialtyRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Specialty, 0, len(specialties))
	for i := range specialties {
		result = append(result, *buildSpecialtyResponse(&specialties[i]))
	}
	return result, nil
}

func (uc *specialtyUsecase) GetSpecialtyByID(ctx context.Context, specialtyID string) (*responses.Specialty, error) {
	specialty, err := uc.SpecialtyRepository.FindByID(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", specialtyID))
	}
	return buildSpecialtyResponse(specialty), nil
}

func (uc *specialtyUsecase) UpdateSpecialty(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*responses.Specialty, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("specialtyUsecase.UpdateSpecialty called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyIDKey, specialtyID),
	)

	if err := validateSchedule(request.WorkingDays, request.WindowStart, request.WindowEnd); err != nil {
		return nil, err
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", specialtyID))
	}

	specialty.Name = request.Name
	specialty.WorkingDays = request.WorkingDays
	specialty.WindowStart = request.WindowStart
	specialty.WindowEnd = request.WindowEnd
	specialty.SetUpdatedNow()

	if err := uc.SpecialtyRepository.UpdateSpecialty(ctx, specialty); err != nil {
		return nil, err
	}
	return buildSpecialtyResponse(specialty), nil
}

func (uc *specialtyUsecase) DeleteSpecialty(ctx context.Context, specialtyID string) error {
	specialty, err := uc.SpecialtyRepository.FindByID(ctx, specialtyID)
	if err != nil {
		return err
	}
	if specialty == nil {
		return exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", specialtyID))
	}
	return uc.SpecialtyRepository.DeleteSpecialty(ctx, specialtyID)
}

func buildSpecialtyResponse(specialty *models.Specialty) *responses.Specialty {
	return &responses.Specialty{
		ID:          specialty.ID,
		Name:        specialty.Name,
		WorkingDays: specialty.WorkingDays,
		WindowStart: specialty.WindowStart,
		WindowEnd:   specialty.WindowEnd,
	}
}
