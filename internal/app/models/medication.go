package models

type Medication struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Unit      string `bson:"unit"`
	Stock     int    `bson:"stock"`
	TimeModel `bson:",inline"`
}
