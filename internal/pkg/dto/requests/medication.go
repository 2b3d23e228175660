package requests

type CreateMedication struct {
	Name  string `json:"name" validate:"required,max=120"`
	Unit  string `json:"unit" validate:"required,max=30"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type UpdateMedication struct {
	Name  string `json:"name" validate:"required,max=120"`
	Unit  string `json:"unit" validate:"required,max=30"`
	Stock int    `json:"stock" validate:"gte=0"`
}
