package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, m *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(m.Auth)

	router.Get("/", prescriptionController.GetPrescriptions)
	router.Get("/{prescription_id}", prescriptionController.GetPrescriptionByID)
	router.Get("/{prescription_id}/attachment", prescriptionController.GetAttachmentURL)

	router.With(m.RequireRoles(constvars.RoleMedico, constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", prescriptionController.CreatePrescription)
	router.With(m.RequireRoles(constvars.RoleMedico, constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/{prescription_id}/attachment", prescriptionController.UploadAttachment)
	router.With(m.RequireRoles(constvars.RoleMedico, constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Delete("/{prescription_id}", prescriptionController.DeletePrescription)
}
