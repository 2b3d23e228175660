package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, m *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(m.Auth)

	// Patients may only see and edit their own record; the usecase
	// narrows the scope from the session.
	router.Get("/", patientController.GetPatients)
	router.Get("/{patient_id}", patientController.GetPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatient)

	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", patientController.CreatePatient)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Delete("/{patient_id}", patientController.DeletePatient)
}
