package responses

// CalendarCell is one grid slot: empty padding when Day is "", otherwise a
// zero-padded day-of-month token with a display-only past marker.
type CalendarCell struct {
	Day  string `json:"day"`
	Past bool   `json:"past,omitempty"`
}

type CalendarMonth struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Weeks [][]CalendarCell `json:"weeks"`
	// Navigation targets, clamped to the bookable range.
	PrevYear  int `json:"prevYear"`
	PrevMonth int `json:"prevMonth"`
	NextYear  int `json:"nextYear"`
	NextMonth int `json:"nextMonth"`
}
