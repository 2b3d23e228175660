package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/app/services/core/appointments"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	dateStr := r.URL.Query().Get(constvars.URLQueryParamDate)

	date, err := time.Parse(constvars.AppointmentDateLayout, dateStr)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetAvailableSlots(ctx, doctorID, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableSlotsGetSuccess, result)
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.BookAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.BookAppointment(ctx, session, request)
	if err != nil {
		ctrl.respondBookingError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, result)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, session, request)
	if err != nil {
		ctrl.respondBookingError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, result)
}

func (ctrl *AppointmentController) CreateConsultationRecord(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateConsultationRecord)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateConsultationRecord(ctx, session, request)
	if err != nil {
		ctrl.respondBookingError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationRecordCreateSuccess, result)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.UpdateAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, session, appointmentID, request)
	if err != nil {
		ctrl.respondBookingError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, result)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, session, appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeletedSuccess, nil)
}

func (ctrl *AppointmentController) GetAgenda(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetAgenda(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentAgendaGetSuccess, result)
}

func (ctrl *AppointmentController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryYear))
	if err != nil || year <= 0 {
		year = now.Year()
	}
	month, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryMonth))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetCalendar(ctx, year, month)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalendarGetSuccess, result)
}

// respondBookingError renders rule violations as a structured rejection and
// defers everything else to the shared error writer.
func (ctrl *AppointmentController) respondBookingError(w http.ResponseWriter, err error) {
	var rejected *appointments.BookingRejectedError
	if errors.As(err, &rejected) {
		response := responses.ResponseDTO{
			Success: false,
			Message: constvars.ErrClientCannotProcessRequest,
			Data:    rejected.Rejection,
		}
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusBadRequest)
		json.NewEncoder(w).Encode(response)
		return
	}
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
