package requests

type CreateSpecialty struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	WorkingDays string `json:"workingDays" validate:"required,max=120"`
	WindowStart string `json:"windowStart" validate:"required,datetime=15:04"`
	WindowEnd   string `json:"windowEnd" validate:"required,datetime=15:04"`
}

type UpdateSpecialty struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	WorkingDays string `json:"workingDays" validate:"required,max=120"`
	WindowStart string `json:"windowStart" validate:"required,datetime=15:04"`
	WindowEnd   string `json:"windowEnd" validate:"required,datetime=15:04"`
}
