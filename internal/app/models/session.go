package models

import (
	"time"

	"clinica-service/internal/pkg/constvars"
)

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	PatientID string    `json:"patientId,omitempty"`
	DoctorID  string    `json:"doctorId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsNotPatient() bool {
	return s.Role != constvars.RolePaciente
}

func (s *Session) IsNotDoctor() bool {
	return s.Role != constvars.RoleMedico
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleSuperAdmin || s.Role == constvars.RoleAdministrador
}

func (s *Session) HasRole(roles ...string) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
