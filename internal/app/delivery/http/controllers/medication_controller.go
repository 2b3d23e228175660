package controllers

import (
	"context"
	"net/http"
	"time"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
}

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
	}
}

func (ctrl *MedicationController) CreateMedication(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedication)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicationUsecase.CreateMedication(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicationCreatedSuccess, result)
}

func (ctrl *MedicationController) GetMedications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicationUsecase.GetMedications(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationGetSuccess, result)
}

func (ctrl *MedicationController) GetMedicationByID(w http.ResponseWriter, r *http.Request) {
	medicationID := chi.URLParam(r, constvars.URLParamMedicationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicationUsecase.GetMedicationByID(ctx, medicationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationGetSuccess, result)
}

func (ctrl *MedicationController) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	medicationID := chi.URLParam(r, constvars.URLParamMedicationID)

	request := new(requests.UpdateMedication)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicationUsecase.UpdateMedication(ctx, medicationID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationUpdatedSuccess, result)
}

func (ctrl *MedicationController) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	medicationID := chi.URLParam(r, constvars.URLParamMedicationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.MedicationUsecase.DeleteMedication(ctx, medicationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicationDeletedSuccess, nil)
}
