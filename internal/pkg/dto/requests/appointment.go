package requests

// BookAppointment is the patient-facing booking path: the slot picker only
// offers whole-hour starts, the end time is derived server side.
type BookAppointment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId,omitempty" validate:"omitempty"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// CreateAppointment is the administrative path where the operator may also
// supply an explicit end time; when omitted it defaults to start plus one
// hour.
type CreateAppointment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateAppointment struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// CreateConsultationRecord logs a visit that already happened, so its date
// must not lie in the future.
type CreateConsultationRecord struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	Diagnosis string `json:"diagnosis" validate:"required,max=2000"`
}
