package models

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Document  string `bson:"document"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone,omitempty"`
	BirthDate string `bson:"birthDate,omitempty"` // "2006-01-02"
	TimeModel `bson:",inline"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
