package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Appointment messages
	AppointmentBookedSuccess        = "appointment booked successfully"
	AppointmentCreatedSuccess       = "appointment created successfully"
	AppointmentUpdatedSuccess       = "appointment updated successfully"
	AppointmentDeletedSuccess       = "appointment deleted successfully"
	AvailableSlotsGetSuccess        = "available slots retrieved successfully"
	CalendarGetSuccess              = "calendar retrieved successfully"
	AppointmentAgendaGetSuccess     = "agenda retrieved successfully"
	ConsultationRecordCreateSuccess = "consultation record created successfully"

	// Catalog messages
	SpecialtyCreatedSuccess    = "specialty created successfully"
	SpecialtyUpdatedSuccess    = "specialty updated successfully"
	SpecialtyDeletedSuccess    = "specialty deleted successfully"
	SpecialtyGetSuccess        = "specialty retrieved successfully"
	DoctorCreatedSuccess       = "doctor created successfully"
	DoctorUpdatedSuccess       = "doctor updated successfully"
	DoctorDeletedSuccess       = "doctor deleted successfully"
	DoctorGetSuccess           = "doctor retrieved successfully"
	PatientCreatedSuccess      = "patient created successfully"
	PatientUpdatedSuccess      = "patient updated successfully"
	PatientDeletedSuccess      = "patient deleted successfully"
	PatientGetSuccess          = "patient retrieved successfully"
	MedicationCreatedSuccess   = "medication created successfully"
	MedicationUpdatedSuccess   = "medication updated successfully"
	MedicationDeletedSuccess   = "medication deleted successfully"
	MedicationGetSuccess       = "medication retrieved successfully"
	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionDeletedSuccess = "prescription deleted successfully"
	PrescriptionGetSuccess     = "prescription retrieved successfully"
	AttachmentUploadSuccess    = "attachment uploaded successfully"
	AttachmentGetSuccess       = "attachment url generated successfully"
)
