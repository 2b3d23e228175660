package scheduling

import (
	"testing"
	"time"
)

func hasViolation(violations []ViolationKind, kind ViolationKind) bool {
	for _, v := range violations {
		if v == kind {
			return true
		}
	}
	return false
}

func TestValidateBookingAccepted(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	accepted, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 10},
	}, []string{"09:00"})

	if len(violations) != 0 {
		t.Fatalf("expected acceptance, got violations %v", violations)
	}
	if accepted.Date != "2026-03-03" || accepted.StartTime != "10:00" || accepted.EndTime != "11:00" {
		t.Errorf("unexpected accepted booking %+v", accepted)
	}
}

func TestValidateBookingYearOutOfRange(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	_, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  time.Date(2035, time.June, 4, 0, 0, 0, 0, time.UTC),
		Start: Clock{H: 10},
	}, nil)

	if !hasViolation(violations, YearOutOfRange) {
		t.Errorf("expected YearOutOfRange, got %v", violations)
	}
}

func TestValidateBookingWeekend(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	_, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  saturday,
		Start: Clock{H: 10},
	}, nil)

	if !hasViolation(violations, WeekendDate) {
		t.Errorf("expected WeekendDate, got %v", violations)
	}
}

func TestValidateBookingPastDate(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC))

	_, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 10},
	}, nil)

	if !hasViolation(violations, PastDate) {
		t.Errorf("expected PastDate, got %v", violations)
	}
}

func TestValidateBookingSlotConflict(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	_, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 10},
	}, []string{"10:00"})

	if !hasViolation(violations, SlotConflict) {
		t.Errorf("expected SlotConflict, got %v", violations)
	}
}

func TestValidateBookingTimeOutOfBounds(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		flow  ValidationFlow
		start Clock
		out   bool
	}{
		{"before clinic open", FlowBooking, Clock{H: 7}, true},
		{"at clinic close", FlowBooking, Clock{H: 18}, true},
		{"no full hour before close", FlowManual, Clock{H: 17, M: 30}, true},
		{"last whole-hour slot", FlowBooking, Clock{H: 17}, false},
		{"non-whole-hour on booking flow", FlowBooking, Clock{H: 10, M: 30}, true},
		{"half hour on manual flow", FlowManual, Clock{H: 10, M: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := Clock{H: tt.start.H + 1, M: tt.start.M}
			_, violations := eng.ValidateBooking(tt.flow, ProposedBooking{
				Date:  tuesday,
				Start: tt.start,
				End:   &end,
			}, nil)
			if got := hasViolation(violations, TimeOutOfBounds); got != tt.out {
				t.Errorf("start %s flow %d: TimeOutOfBounds = %v, want %v (all: %v)", tt.start, tt.flow, got, tt.out, violations)
			}
		})
	}
}

func TestValidateBookingInvalidTimeRange(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	end := Clock{H: 9}
	_, violations := eng.ValidateBooking(FlowManual, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 10},
		End:   &end,
	}, nil)

	if !hasViolation(violations, InvalidTimeRange) {
		t.Errorf("expected InvalidTimeRange, got %v", violations)
	}
}

func TestValidateRetroactiveRejectsFutureOnly(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))

	// A past consultation is fine on the retroactive flow.
	_, violations := eng.ValidateBooking(FlowRetroactive, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 10},
	}, nil)
	if len(violations) != 0 {
		t.Errorf("retroactive flow should accept past dates, got %v", violations)
	}

	// A future one is not.
	_, violations = eng.ValidateBooking(FlowRetroactive, ProposedBooking{
		Date:  time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		Start: Clock{H: 10},
	}, nil)
	if !hasViolation(violations, FutureDateNotAllowed) {
		t.Errorf("expected FutureDateNotAllowed, got %v", violations)
	}
}

func TestValidateBookingReportsMultipleViolations(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	_, violations := eng.ValidateBooking(FlowBooking, ProposedBooking{
		Date:  time.Date(2035, time.June, 2, 0, 0, 0, 0, time.UTC), // Saturday
		Start: Clock{H: 19},
	}, nil)

	for _, want := range []ViolationKind{YearOutOfRange, TimeOutOfBounds} {
		if !hasViolation(violations, want) {
			t.Errorf("expected %s among %v", want, violations)
		}
	}
}

func TestValidateBookingManualKeepsSuppliedEnd(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	end := Clock{H: 13}
	accepted, violations := eng.ValidateBooking(FlowManual, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 11},
		End:   &end,
	}, nil)
	if len(violations) != 0 {
		t.Fatalf("expected acceptance, got violations %v", violations)
	}
	if accepted.EndTime != "13:00" {
		t.Errorf("EndTime = %s, want 13:00", accepted.EndTime)
	}

	accepted, violations = eng.ValidateBooking(FlowManual, ProposedBooking{
		Date:  tuesday,
		Start: Clock{H: 11},
	}, nil)
	if len(violations) != 0 {
		t.Fatalf("expected acceptance, got violations %v", violations)
	}
	if accepted.EndTime != "12:00" {
		t.Errorf("EndTime without explicit end = %s, want 12:00", accepted.EndTime)
	}
}
