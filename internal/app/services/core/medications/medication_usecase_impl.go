package medications

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

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	Log                  *zap.Logger
}

var (
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

func NewMedicationUsecase(medicationRepository contracts.MedicationRepository, logger *zap.Logger) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			MedicationRepository: medicationRepository,
			Log:                  logger,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) CreateMedication(ctx context.Context, request *requests.CreateMedication) (*responses.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medication := &models.Medication{
		Name:  request.Name,
		Unit:  request.Unit,
		Stock: request.Stock,
	}
	medication.SetCreatedNow()

	medicationID, err := uc.MedicationRepository.CreateMedication(ctx, medication)
	if err != nil {
		return nil, err
	}
	medication.ID = medicationID

	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) GetMedications(ctx context.Context) ([]responses.Medication, error) {
	medications, err := uc.MedicationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Medication, 0, len(medications))
	for i := range medications {
		result = append(result, *buildMedicationResponse(&medications[i]))
	}
	return result, nil
}

func (uc *medicationUsecase) GetMedicationByID(ctx context.Context, medicationID string) (*responses.Medication, error) {
	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, exceptions.ErrMedicationNotFound(fmt.Errorf("medication %s not found", medicationID))
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) UpdateMedication(ctx context.Context, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error) {
	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, exceptions.ErrMedicationNotFound(fmt.Errorf("medication %s not found", medicationID))
	}

	medication.Name = request.Name
	medication.Unit = request.Unit
	medication.Stock = request.Stock
	medication.SetUpdatedNow()

	if err := uc.MedicationRepository.UpdateMedication(ctx, medication); err != nil {
		return nil, err
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) DeleteMedication(ctx context.Context, medicationID string) error {
	medication, err := uc.MedicationRepository.FindByID(ctx, medicationID)
	if err != nil {
		return err
	}
	if medication == nil {
		return exceptions.ErrMedicationNotFound(fmt.Errorf("medication %s not found", medicationID))
	}
	return uc.MedicationRepository.DeleteMedication(ctx, medicationID)
}

func buildMedicationResponse(medication *models.Medication) *responses.Medication {
	return &responses.Medication{
		ID:    medication.ID,
		Name:  medication.Name,
		Unit:  medication.Unit,
		Stock: medication.Stock,
	}
}
