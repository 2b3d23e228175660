package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func fixedEngine(now time.Time) *Engine {
	return &Engine{Now: func() time.Time { return now }}
}

var weekdaySchedule = SpecialtySchedule{
	WorkingDays: "Lunes a Viernes",
	WindowStart: "08:00",
	WindowEnd:   "12:00",
}

func TestResolveWindowClipsToClinicBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       Window
	}{
		{"specialty tighter than clinic", "09:00", "17:00", Window{Clock{H: 9}, Clock{H: 17}}},
		{"specialty wider than clinic", "07:00", "19:00", Window{Clock{H: 8}, Clock{H: 18}}},
		{"window collapses after clipping", "19:00", "21:00", Window{}},
		{"start at end", "10:00", "10:00", Window{}},
		{"unparseable bound", "nine", "17:00", Window{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWindow(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("ResolveWindow(%q, %q) = %+v, want %+v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAvailableSlotsExcludesBookedStarts(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC))
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC) // Tuesday

	got := eng.AvailableSlots(weekdaySchedule, date, []string{"10:00"})
	want := []string{"08:00", "09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableSlots = %v, want %v", got, want)
	}
}

func TestAvailableSlotsEmptyForPastDates(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC))
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	if got := eng.AvailableSlots(weekdaySchedule, date, nil); len(got) != 0 {
		t.Errorf("expected no slots for a past date, got %v", got)
	}
}

func TestAvailableSlotsEmptyForWeekends(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	open := SpecialtySchedule{WorkingDays: "Lunes a Domingo", WindowStart: "08:00", WindowEnd: "18:00"}

	for _, date := range []time.Time{saturday, sunday} {
		if got := eng.AvailableSlots(open, date, nil); len(got) != 0 {
			t.Errorf("expected no slots on %s, got %v", date.Weekday(), got)
		}
	}
}

func TestAvailableSlotsEmptyForNonWorkingDay(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	schedule := SpecialtySchedule{WorkingDays: "Lunes", WindowStart: "08:00", WindowEnd: "12:00"}

	if got := eng.AvailableSlots(schedule, tuesday, nil); len(got) != 0 {
		t.Errorf("expected no slots on a non-working day, got %v", got)
	}
}

func TestAvailableSlotsEmptyForUnparseableExpression(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	schedule := SpecialtySchedule{WorkingDays: "Funday", WindowStart: "08:00", WindowEnd: "12:00"}

	for _, date := range []time.Time{monday, tuesday, wednesday, friday} {
		if got := eng.AvailableSlots(schedule, date, nil); len(got) != 0 {
			t.Errorf("expected fail-closed empty result on %s, got %v", date.Weekday(), got)
		}
	}
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	booked := []string{"09:00", "11:00"}

	first := eng.AvailableSlots(weekdaySchedule, tuesday, booked)
	second := eng.AvailableSlots(weekdaySchedule, tuesday, booked)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged: %v vs %v", first, second)
	}
}

func TestAvailableSlotsAscendingAndDisjointFromBooked(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	full := SpecialtySchedule{WorkingDays: "Lunes a Viernes", WindowStart: "08:00", WindowEnd: "18:00"}
	booked := []string{"08:00", "13:00", "17:00"}

	got := eng.AvailableSlots(full, tuesday, booked)
	if len(got) != 7 {
		t.Fatalf("expected 7 free slots, got %d: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("slots not strictly ascending: %v", got)
		}
	}
	for _, taken := range booked {
		for _, s := range got {
			if s == taken {
				t.Errorf("booked start %s leaked into result %v", taken, got)
			}
		}
	}
}

func TestAvailableSlotsAlignToWholeHours(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	midHour := SpecialtySchedule{
		WorkingDays: "Lunes a Viernes",
		WindowStart: "08:30",
		WindowEnd:   "12:00",
	}

	got := eng.AvailableSlots(midHour, tuesday, nil)
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableSlots = %v, want %v", got, want)
	}

	// Every offered slot must survive the booking flow.
	for _, slot := range got {
		start, ok := ParseClock(slot)
		if !ok {
			t.Fatalf("offered slot %q does not parse", slot)
		}
		proposal := ProposedBooking{Date: tuesday, Start: start}
		if _, violations := eng.ValidateBooking(FlowBooking, proposal, nil); len(violations) != 0 {
			t.Errorf("offered slot %s rejected on booking: %v", slot, violations)
		}
	}
}
