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

type SpecialtyController struct {
	Log              *zap.Logger
	SpecialtyUsecase contracts.SpecialtyUsecase
}

func NewSpecialtyController(logger *zap.Logger, specialtyUsecase contracts.SpecialtyUsecase) *SpecialtyController {
	return &SpecialtyController{
		Log:              logger,
		SpecialtyUsecase: specialtyUsecase,
	}
}

func (ctrl *SpecialtyController) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSpecialty)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.CreateSpecialty(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SpecialtyCreatedSuccess, result)
}

func (ctrl *SpecialtyController) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.GetSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtyGetSuccess, result)
}

func (ctrl *SpecialtyController) GetSpecialtyByID(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, constvars.URLParamSpecialtyID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.GetSpecialtyByID(ctx, specialtyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtyGetSuccess, result)
}

func (ctrl *SpecialtyController) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, constvars.URLParamSpecialtyID)

	request := new(requests.UpdateSpecialty)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.UpdateSpecialty(ctx, specialtyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtyUpdatedSuccess, result)
}

func (ctrl *SpecialtyController) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, constvars.URLParamSpecialtyID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SpecialtyUsecase.DeleteSpecialty(ctx, specialtyID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SpecialtyDeletedSuccess, nil)
}
