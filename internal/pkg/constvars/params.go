package constvars

const (
	URLParamDoctorID       = "doctor_id"
	URLParamPatientID      = "patient_id"
	URLParamSpecialtyID    = "specialty_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamPrescriptionID = "prescription_id"
	URLParamMedicationID   = "medication_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamSearch   = "search"
	URLQueryParamDate     = "date"
	URLQueryYear          = "year"
	URLQueryMonth         = "month"
)

const (
	MultipartFormFileField = "attachment"
)
