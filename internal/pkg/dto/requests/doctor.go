package requests

type CreateDoctor struct {
	FirstName   string `json:"firstName" validate:"required,max=80"`
	LastName    string `json:"lastName" validate:"required,max=80"`
	Email       string `json:"email" validate:"required,email"`
	SpecialtyID string `json:"specialtyId" validate:"required"`
}

type UpdateDoctor struct {
	FirstName   string `json:"firstName" validate:"required,max=80"`
	LastName    string `json:"lastName" validate:"required,max=80"`
	Email       string `json:"email" validate:"required,email"`
	SpecialtyID string `json:"specialtyId" validate:"required"`
}
