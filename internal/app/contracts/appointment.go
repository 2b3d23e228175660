package contracts

import (
	"context"
	"time"

	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID string, date time.Time) (*responses.AvailableSlots, error)
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	CreateConsultationRecord(ctx context.Context, session *models.Session, request *requests.CreateConsultationRecord) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error
	GetAgenda(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	GetCalendar(ctx context.Context, year, month int) (*responses.CalendarMonth, error)
}
