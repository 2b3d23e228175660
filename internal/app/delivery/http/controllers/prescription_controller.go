package controllers

import (
	"context"
	"net/http"
	"time"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	InternalConfig      *config.InternalConfig
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, internalConfig *config.InternalConfig) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreatePrescription)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.CreatePrescription(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, result)
}

func (ctrl *PrescriptionController) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.GetPrescriptions(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionGetSuccess, result)
}

func (ctrl *PrescriptionController) GetPrescriptionByID(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.GetPrescriptionByID(ctx, session, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionGetSuccess, result)
}

func (ctrl *PrescriptionController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PrescriptionUsecase.DeletePrescription(ctx, session, prescriptionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDeletedSuccess, nil)
}

func (ctrl *PrescriptionController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)

	maxBytes := ctrl.InternalConfig.App.MinioAttachmentMaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.MultipartFormFileField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PrescriptionUsecase.UploadAttachment(ctx, session, prescriptionID, file, header); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttachmentUploadSuccess, nil)
}

func (ctrl *PrescriptionController) GetAttachmentURL(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.GetAttachmentURL(ctx, session, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttachmentGetSuccess, result)
}
