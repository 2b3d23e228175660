package responses

type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkingDays string `json:"workingDays"`
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
}

type Doctor struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	SpecialtyID   string `json:"specialtyId"`
	SpecialtyName string `json:"specialtyName,omitempty"`
}

type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}

type Medication struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Stock int    `json:"stock"`
}

type Prescription struct {
	ID             string `json:"id"`
	AppointmentID  string `json:"appointmentId"`
	DoctorID       string `json:"doctorId"`
	PatientID      string `json:"patientId"`
	MedicationID   string `json:"medicationId"`
	MedicationName string `json:"medicationName,omitempty"`
	Quantity       int    `json:"quantity"`
	Directions     string `json:"directions,omitempty"`
	HasAttachment  bool   `json:"hasAttachment"`
}

type AttachmentURL struct {
	URL       string `json:"url"`
	ExpiresIn string `json:"expiresIn"`
}
