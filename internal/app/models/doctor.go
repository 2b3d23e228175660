package models

type Doctor struct {
	ID          string `bson:"_id,omitempty"`
	FirstName   string `bson:"firstName"`
	LastName    string `bson:"lastName"`
	Email       string `bson:"email"`
	SpecialtyID string `bson:"specialtyId"`
	TimeModel   `bson:",inline"`
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
