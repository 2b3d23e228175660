package models

// Specialty carries the free-text working-days expression as entered by
// administration (e.g. "Lunes a Viernes") plus its wall-clock practice
// window. The expression is validated against the day-rule grammar when the
// specialty is created or edited; readers still treat a bad value as
// "works no days".
type Specialty struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	WorkingDays string `bson:"workingDays"`
	WindowStart string `bson:"windowStart"` // "HH:MM"
	WindowEnd   string `bson:"windowEnd"`   // "HH:MM"
	TimeModel   `bson:",inline"`
}
