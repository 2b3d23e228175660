package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/app/services/core/scheduling"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// dayLockTTL bounds how long a booking can hold a doctor's day agenda.
const dayLockTTL = 10 * time.Second

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	SpecialtyRepository   contracts.SpecialtyRepository
	LockerService         contracts.LockerService
	MailerService         contracts.MailerService
	Engine                *scheduling.Engine
	InternalConfig        *config.InternalConfig
	DriverConfig          *config.DriverConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	specialtyRepository contracts.SpecialtyRepository,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	engine *scheduling.Engine,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			SpecialtyRepository:   specialtyRepository,
			LockerService:         lockerService,
			MailerService:         mailerService,
			Engine:                engine,
			InternalConfig:        internalConfig,
			DriverConfig:          driverConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID string, date time.Time) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	dateLabel := date.Format(constvars.AppointmentDateLayout)
	uc.Log.Info("appointmentUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, dateLabel),
	)

	schedule, err := uc.scheduleForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	bookedStarts, err := uc.bookedStarts(ctx, doctorID, dateLabel, "")
	if err != nil {
		return nil, err
	}

	slots := uc.Engine.AvailableSlots(*schedule, date, bookedStarts)
	if slots == nil {
		slots = []string{}
	}
	return &responses.AvailableSlots{
		DoctorID: doctorID,
		Date:     dateLabel,
		Slots:    slots,
	}, nil
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	patientID := request.PatientID
	if !session.IsNotPatient() {
		// Patients book for themselves regardless of the payload.
		patientID = session.PatientID
	}
	if patientID == "" {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("booking requires a patient"))
	}

	doctor, patient, err := uc.lookupParties(ctx, request.DoctorID, patientID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(constvars.AppointmentDateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	start, ok := scheduling.ParseClock(request.StartTime)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(fmt.Errorf("start time %q", request.StartTime))
	}

	// Serialize bookings on the doctor's day so validation and insert see a
	// stable set of taken slots.
	lockKey := fmt.Sprintf(constvars.RedisDayLockKeyFormat, request.DoctorID, request.Date)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, dayLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAgendaLocked(fmt.Errorf("agenda for doctor %s on %s is being modified", request.DoctorID, request.Date))
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	bookedStarts, err := uc.bookedStarts(ctx, request.DoctorID, request.Date, "")
	if err != nil {
		return nil, err
	}

	accepted, violations := uc.Engine.ValidateBooking(scheduling.FlowBooking, scheduling.ProposedBooking{
		Date:  date,
		Start: start,
	}, bookedStarts)
	if len(violations) > 0 {
		return nil, rejectionError(request.DoctorID, request.Date, request.StartTime, violations)
	}

	appointment := &models.Appointment{
		DoctorID:  request.DoctorID,
		PatientID: patientID,
		Date:      accepted.Date,
		StartTime: accepted.StartTime,
		EndTime:   accepted.EndTime,
		Notes:     request.Notes,
	}
	appointment.SetCreatedNow()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.sendAppointmentEmail(ctx, utils.BuildAppointmentConfirmedEmailPayload(
		uc.DriverConfig.SMTP.EmailSender, patient.Email, patient.FullName(), doctor.FullName(), appointment.Date, appointment.StartTime,
	))

	return buildAppointmentResponse(appointment, doctor.FullName(), patient.FullName()), nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctor, patient, err := uc.lookupParties(ctx, request.DoctorID, request.PatientID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(constvars.AppointmentDateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	start, ok := scheduling.ParseClock(request.StartTime)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(fmt.Errorf("start time %q", request.StartTime))
	}
	end, err := parseOptionalClock(request.EndTime)
	if err != nil {
		return nil, err
	}

	bookedStarts, err := uc.bookedStarts(ctx, request.DoctorID, request.Date, "")
	if err != nil {
		return nil, err
	}

	accepted, violations := uc.Engine.ValidateBooking(scheduling.FlowManual, scheduling.ProposedBooking{
		Date:  date,
		Start: start,
		End:   end,
	}, bookedStarts)
	if len(violations) > 0 {
		return nil, rejectionError(request.DoctorID, request.Date, request.StartTime, violations)
	}

	appointment := &models.Appointment{
		DoctorID:  request.DoctorID,
		PatientID: request.PatientID,
		Date:      accepted.Date,
		StartTime: accepted.StartTime,
		EndTime:   accepted.EndTime,
		Notes:     request.Notes,
	}
	appointment.SetCreatedNow()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.sendAppointmentEmail(ctx, utils.BuildAppointmentConfirmedEmailPayload(
		uc.DriverConfig.SMTP.EmailSender, patient.Email, patient.FullName(), doctor.FullName(), appointment.Date, appointment.StartTime,
	))

	return buildAppointmentResponse(appointment, doctor.FullName(), patient.FullName()), nil
}

func (uc *appointmentUsecase) CreateConsultationRecord(ctx context.Context, session *models.Session, request *requests.CreateConsultationRecord) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateConsultationRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctorID := request.DoctorID
	if !session.IsNotDoctor() && session.DoctorID != "" {
		doctorID = session.DoctorID
	}

	doctor, patient, err := uc.lookupParties(ctx, doctorID, request.PatientID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(constvars.AppointmentDateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	start, ok := scheduling.ParseClock(request.StartTime)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(fmt.Errorf("start time %q", request.StartTime))
	}

	// Retroactive records never contend for slots, so no lock and no
	// conflict check; the flow only guards the year range and future dates.
	accepted, violations := uc.Engine.ValidateBooking(scheduling.FlowRetroactive, scheduling.ProposedBooking{
		Date:  date,
		Start: start,
	}, nil)
	if len(violations) > 0 {
		return nil, rejectionError(doctorID, request.Date, request.StartTime, violations)
	}

	appointment := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: request.PatientID,
		Date:      accepted.Date,
		StartTime: accepted.StartTime,
		EndTime:   accepted.EndTime,
		Notes:     request.Diagnosis,
	}
	appointment.SetCreatedNow()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	return buildAppointmentResponse(appointment, doctor.FullName(), patient.FullName()), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	if !session.IsNotPatient() && session.PatientID != appointment.PatientID {
		return nil, exceptions.ErrNotAppointmentOwner(fmt.Errorf("patient %s does not own appointment %s", session.PatientID, appointmentID))
	}

	date, err := time.Parse(constvars.AppointmentDateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	start, ok := scheduling.ParseClock(request.StartTime)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(fmt.Errorf("start time %q", request.StartTime))
	}
	end, err := parseOptionalClock(request.EndTime)
	if err != nil {
		return nil, err
	}

	// The appointment's own slot must not count as a conflict when it is
	// rescheduled within the same day.
	bookedStarts, err := uc.bookedStarts(ctx, appointment.DoctorID, request.Date, appointment.ID)
	if err != nil {
		return nil, err
	}

	accepted, violations := uc.Engine.ValidateBooking(scheduling.FlowManual, scheduling.ProposedBooking{
		Date:  date,
		Start: start,
		End:   end,
	}, bookedStarts)
	if len(violations) > 0 {
		return nil, rejectionError(appointment.DoctorID, request.Date, request.StartTime, violations)
	}

	appointment.Date = accepted.Date
	appointment.StartTime = accepted.StartTime
	appointment.EndTime = accepted.EndTime
	appointment.Notes = request.Notes
	appointment.SetUpdatedNow()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	doctorName, patientName := uc.partyNames(ctx, appointment)
	return buildAppointmentResponse(appointment, doctorName, patientName), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	if !session.IsNotPatient() && session.PatientID != appointment.PatientID {
		return exceptions.ErrNotAppointmentOwner(fmt.Errorf("patient %s does not own appointment %s", session.PatientID, appointmentID))
	}

	if err := uc.AppointmentRepository.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	doctor, _ := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
	patient, _ := uc.PatientRepository.FindByID(ctx, appointment.PatientID)
	if doctor != nil && patient != nil {
		uc.sendAppointmentEmail(ctx, utils.BuildAppointmentCancelledEmailPayload(
			uc.DriverConfig.SMTP.EmailSender, patient.Email, patient.FullName(), doctor.FullName(), appointment.Date, appointment.StartTime,
		))
	}
	return nil
}

func (uc *appointmentUsecase) GetAgenda(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case !session.IsNotDoctor():
		appointments, err = uc.AppointmentRepository.FindByDoctor(ctx, session.DoctorID)
	case !session.IsNotPatient():
		appointments, err = uc.AppointmentRepository.FindByPatient(ctx, session.PatientID)
	default:
		today := uc.Engine.Now().Format(constvars.AppointmentDateLayout)
		appointments, err = uc.AppointmentRepository.FindByDate(ctx, today)
	}
	if err != nil {
		return nil, err
	}

	doctorNames, patientNames, err := uc.nameIndexes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		result = append(result, *buildAppointmentResponse(a, doctorNames[a.DoctorID], patientNames[a.PatientID]))
	}
	return result, nil
}

func (uc *appointmentUsecase) GetCalendar(ctx context.Context, year, month int) (*responses.CalendarMonth, error) {
	clampedYear, clampedMonth := uc.Engine.ClampMonth(year, time.Month(month))
	weeks := uc.Engine.BuildMonth(clampedYear, clampedMonth)

	grid := make([][]responses.CalendarCell, 0, len(weeks))
	for _, week := range weeks {
		row := make([]responses.CalendarCell, 0, len(week))
		for _, cell := range week {
			row = append(row, responses.CalendarCell{Day: cell.Token(), Past: cell.Past})
		}
		grid = append(grid, row)
	}

	prevYear, prevMonth := uc.Engine.ClampMonth(stepMonth(clampedYear, clampedMonth, -1))
	nextYear, nextMonth := uc.Engine.ClampMonth(stepMonth(clampedYear, clampedMonth, +1))

	return &responses.CalendarMonth{
		Year:      clampedYear,
		Month:     int(clampedMonth),
		Weeks:     grid,
		PrevYear:  prevYear,
		PrevMonth: int(prevMonth),
		NextYear:  nextYear,
		NextMonth: int(nextMonth),
	}, nil
}

func stepMonth(year int, month time.Month, delta int) (int, time.Month) {
	stepped := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return stepped.Year(), stepped.Month()
}

// parseOptionalClock parses an "HH:MM" value that may be absent; nil means
// the caller derives the end from the start.
func parseOptionalClock(value string) (*scheduling.Clock, error) {
	if value == "" {
		return nil, nil
	}
	parsed, ok := scheduling.ParseClock(value)
	if !ok {
		return nil, exceptions.ErrCannotParseTime(fmt.Errorf("end time %q", value))
	}
	return &parsed, nil
}

func (uc *appointmentUsecase) scheduleForDoctor(ctx context.Context, doctorID string) (*scheduling.SpecialtySchedule, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, doctor.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrSpecialtyNotFound(fmt.Errorf("specialty %s not found", doctor.SpecialtyID))
	}

	return &scheduling.SpecialtySchedule{
		WorkingDays: specialty.WorkingDays,
		WindowStart: specialty.WindowStart,
		WindowEnd:   specialty.WindowEnd,
	}, nil
}

// bookedStarts returns the taken "HH:MM" start times for the doctor's day,
// excluding excludeID when rescheduling.
func (uc *appointmentUsecase) bookedStarts(ctx context.Context, doctorID, date, excludeID string) ([]string, error) {
	booked, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	starts := make([]string, 0, len(booked))
	for i := range booked {
		if excludeID != "" && booked[i].ID == excludeID {
			continue
		}
		starts = append(starts, booked[i].StartTime)
	}
	return starts, nil
}

func (uc *appointmentUsecase) lookupParties(ctx context.Context, doctorID, patientID string) (*models.Doctor, *models.Patient, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}
	return doctor, patient, nil
}

func (uc *appointmentUsecase) partyNames(ctx context.Context, appointment *models.Appointment) (string, string) {
	doctorName, patientName := "", ""
	if doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.FullName()
	}
	if patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID); err == nil && patient != nil {
		patientName = patient.FullName()
	}
	return doctorName, patientName
}

func (uc *appointmentUsecase) nameIndexes(ctx context.Context) (map[string]string, map[string]string, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	doctorNames := make(map[string]string, len(doctors))
	for i := range doctors {
		doctorNames[doctors[i].ID] = doctors[i].FullName()
	}
	patientNames := make(map[string]string, len(patients))
	for i := range patients {
		patientNames[patients[i].ID] = patients[i].FullName()
	}
	return doctorNames, patientNames, nil
}

// sendAppointmentEmail is best effort: a mailer outage must not fail the
// booking itself.
func (uc *appointmentUsecase) sendAppointmentEmail(ctx context.Context, payload *requests.EmailPayload) {
	if len(payload.To) == 0 || payload.To[0] == "" {
		return
	}
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase could not enqueue email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func rejectionError(doctorID, date, startTime string, violations []scheduling.ViolationKind) error {
	names := make([]string, 0, len(violations))
	for _, v := range violations {
		names = append(names, string(v))
	}
	return &BookingRejectedError{Rejection: &responses.BookingRejected{
		DoctorID:   doctorID,
		Date:       date,
		StartTime:  startTime,
		Violations: names,
	}}
}

func buildAppointmentResponse(appointment *models.Appointment, doctorName, patientName string) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		DoctorName:  doctorName,
		PatientID:   appointment.PatientID,
		PatientName: patientName,
		Date:        appointment.Date,
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		Notes:       appointment.Notes,
	}
}
