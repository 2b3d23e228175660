package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, m *middlewares.Middlewares, doctorController *controllers.DoctorController, appointmentController *controllers.AppointmentController) {
	router.Use(m.Auth)

	router.Get("/", doctorController.GetDoctors)
	router.Get("/{doctor_id}", doctorController.GetDoctorByID)
	router.Get("/{doctor_id}/available-slots", appointmentController.GetAvailableSlots)

	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", doctorController.CreateDoctor)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Put("/{doctor_id}", doctorController.UpdateDoctor)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Delete("/{doctor_id}", doctorController.DeleteDoctor)
}
