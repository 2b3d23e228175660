package models

// Appointment stores the calendar day and the wall-clock slot separately.
// Date is "2006-01-02" and StartTime/EndTime are "15:04"; EndTime is always
// StartTime plus one hour. The collection carries a unique index on
// (doctorId, date, startTime) so two concurrent bookings for the same slot
// cannot both land.
type Appointment struct {
	ID        string `bson:"_id,omitempty"`
	DoctorID  string `bson:"doctorId"`
	PatientID string `bson:"patientId"`
	Date      string `bson:"date"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
	Notes     string `bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}
