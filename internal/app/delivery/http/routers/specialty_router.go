package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSpecialtyRoutes(router chi.Router, m *middlewares.Middlewares, specialtyController *controllers.SpecialtyController) {
	router.Use(m.Auth)

	router.Get("/", specialtyController.GetSpecialties)
	router.Get("/{specialty_id}", specialtyController.GetSpecialtyByID)

	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Post("/", specialtyController.CreateSpecialty)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Put("/{specialty_id}", specialtyController.UpdateSpecialty)
	router.With(m.RequireRoles(constvars.RoleAdministrador, constvars.RoleSuperAdmin)).
		Delete("/{specialty_id}", specialtyController.DeleteSpecialty)
}
