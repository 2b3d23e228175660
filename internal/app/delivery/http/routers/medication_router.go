package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, m *middlewares.Middlewares, medicationController *controllers.MedicationController) {
	router.Use(m.Auth)

	router.Get("/", medicationController.GetMedications)
	router.Get("/{medication_id}", medicationController.GetMedicationByID)

	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", medicationController.CreateMedication)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Put("/{medication_id}", medicationController.UpdateMedication)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Delete("/{medication_id}", medicationController.DeleteMedication)
}
