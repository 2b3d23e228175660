package models

type Prescription struct {
	ID            string `bson:"_id,omitempty"`
	AppointmentID string `bson:"appointmentId"`
	DoctorID      string `bson:"doctorId"`
	PatientID     string `bson:"patientId"`
	MedicationID  string `bson:"medicationId"`
	Quantity      int    `bson:"quantity"`
	Directions    string `bson:"directions,omitempty"`
	// AttachmentObject is the minio object name of the scanned prescription, when uploaded.
	AttachmentObject string `bson:"attachmentObject,omitempty"`
	TimeModel        `bson:",inline"`
}
