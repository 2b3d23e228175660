package scheduling

import "time"

// Engine computes free one-hour slots for a (doctor, date) pair. It holds
// no mutable state; every call recomputes from its inputs plus one impure
// read of "today" through Now, which tests override.
type Engine struct {
	Now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// AvailableSlots returns the ordered free whole-hour start times for the
// date, formatted as zero-padded "HH:MM". Preconditions short-circuit to an
// empty result: a date before today, a weekend, a working-days expression
// that does not parse, or a rule that excludes the date's weekday. The
// window's whole-hour starts with room for a full hour are emitted
// ascending, minus the already booked start times.
func (e *Engine) AvailableSlots(schedule SpecialtySchedule, date time.Time, bookedStarts []string) []string {
	today := dateOnly(e.Now())
	day := dateOnly(date)

	if day.Before(today) {
		return nil
	}
	if isWeekend(day) {
		return nil
	}

	rule, err := ParseDayRule(schedule.WorkingDays)
	if err != nil {
		return nil
	}
	if !rule.WorksOn(day) {
		return nil
	}

	window := ResolveWindow(schedule.WindowStart, schedule.WindowEnd)
	if window.Empty() {
		return nil
	}

	booked := make(map[string]struct{}, len(bookedStarts))
	for _, s := range bookedStarts {
		booked[s] = struct{}{}
	}

	// Starts align to whole hours so every emitted slot is bookable;
	// a window left over from before write-time validation may open
	// mid-hour, in which case the first partial hour is skipped.
	start := window.Start
	if start.M != 0 {
		start = Clock{H: start.H + 1}
	}

	var slots []string
	for t := start; t.Minutes()+60 <= window.End.Minutes(); t.H++ {
		label := t.String()
		if _, taken := booked[label]; !taken {
			slots = append(slots, label)
		}
	}
	return slots
}
