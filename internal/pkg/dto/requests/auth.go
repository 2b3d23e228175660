package requests

type Register struct {
	Username  string `json:"username" validate:"required,min=4,max=30"`
	Password  string `json:"password" validate:"required,min=8"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=SuperAdmin Administrador Medico Paciente"`
	PatientID string `json:"patientId,omitempty" validate:"omitempty"`
	DoctorID  string `json:"doctorId,omitempty" validate:"omitempty"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Module   string `json:"module" validate:"required,oneof=staff patients"`
}
