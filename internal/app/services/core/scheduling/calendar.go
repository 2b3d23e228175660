package scheduling

import (
	"fmt"
	"time"
)

// CalendarCell is one slot of the month grid. Day is zero on the padding
// cells before day 1 and after the last day; Past marks dates strictly
// before today for display only and has no effect on booking eligibility.
type CalendarCell struct {
	Day  int
	Past bool
}

func (c CalendarCell) Token() string {
	if c.Day == 0 {
		return ""
	}
	return fmt.Sprintf("%02d", c.Day)
}

// BuildMonth lays the month out Monday-first into week rows of exactly 7
// cells. The first row is padded with empty cells up to the weekday of day
// 1 (Sunday counting as position 7), and the last row padded after the
// final day.
func (e *Engine) BuildMonth(year int, month time.Month) [][]CalendarCell {
	today := dateOnly(e.Now())

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := mondayFirstIndex(first.Weekday())

	cells := make([]CalendarCell, leading, leading+daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		cells = append(cells, CalendarCell{Day: day, Past: date.Before(today)})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, CalendarCell{})
	}

	weeks := make([][]CalendarCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// ClampMonth restricts calendar navigation to the bookable range: never
// before the current month, never after December of the latest bookable
// year.
func (e *Engine) ClampMonth(year int, month time.Month) (int, time.Month) {
	now := e.Now()
	if year < now.Year() || (year == now.Year() && month < now.Month()) {
		return now.Year(), now.Month()
	}
	if year > MaxBookableYear {
		return MaxBookableYear, time.December
	}
	return year, month
}
