package responses

type Appointment struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName,omitempty"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Notes       string `json:"notes,omitempty"`
}

type AvailableSlots struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// BookingRejected lists every temporal rule the proposed booking violated,
// echoing the selection so the client can redisplay the picker as-was.
type BookingRejected struct {
	DoctorID   string   `json:"doctorId"`
	Date       string   `json:"date"`
	StartTime  string   `json:"startTime"`
	Violations []string `json:"violations"`
}
