package requests

type CreatePrescription struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	MedicationID  string `json:"medicationId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	Directions    string `json:"directions,omitempty" validate:"omitempty,max=1000"`
}
