package models

import "clinica-service/internal/pkg/constvars"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Email     string `bson:"email"`
	Role      string `bson:"role"`
	PatientID string `bson:"patientId,omitempty"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsStaff() bool {
	switch u.Role {
	case constvars.RoleSuperAdmin, constvars.RoleAdministrador, constvars.RoleMedico:
		return true
	}
	return false
}

// ModuleFor returns the login module a role belongs to.
func ModuleFor(role string) string {
	if role == constvars.RolePaciente {
		return constvars.LoginModulePatients
	}
	return constvars.LoginModuleStaff
}
