package requests

type CreatePatient struct {
	FirstName string `json:"firstName" validate:"required,max=80"`
	LastName  string `json:"lastName" validate:"required,max=80"`
	Document  string `json:"document" validate:"required,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	BirthDate string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePatient struct {
	FirstName string `json:"firstName" validate:"required,max=80"`
	LastName  string `json:"lastName" validate:"required,max=80"`
	Document  string `json:"document" validate:"required,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	BirthDate string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
