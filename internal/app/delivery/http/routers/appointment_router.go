package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(m.Auth)

	router.Get("/calendar", appointmentController.GetCalendar)
	router.Get("/agenda", appointmentController.GetAgenda)

	router.With(m.RequireRoles(constvars.RolePaciente, constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/book", appointmentController.BookAppointment)

	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", appointmentController.CreateAppointment)

	router.With(m.RequireRoles(constvars.RoleMedico, constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/consultations", appointmentController.CreateConsultationRecord)

	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}
