package scheduling

import "time"

// ViolationKind names one temporal business rule a proposed booking broke.
type ViolationKind string

const (
	YearOutOfRange       ViolationKind = "YearOutOfRange"
	PastDate             ViolationKind = "PastDate"
	WeekendDate          ViolationKind = "WeekendDate"
	TimeOutOfBounds      ViolationKind = "TimeOutOfBounds"
	SlotConflict         ViolationKind = "SlotConflict"
	InvalidTimeRange     ViolationKind = "InvalidTimeRange"
	FutureDateNotAllowed ViolationKind = "FutureDateNotAllowed"
	ScheduleParseFailure ViolationKind = "ScheduleParseFailure"
)

// ValidationFlow selects which temporal rules apply. The booking and manual
// flows reject past dates; the retroactive flow logs a visit that already
// happened and therefore rejects future dates instead. The two polarities
// must never be merged.
type ValidationFlow int

const (
	// FlowBooking is the slot-picker path: whole-hour starts only, end
	// time derived.
	FlowBooking ValidationFlow = iota
	// FlowManual is administrative create/edit, where the operator also
	// supplies an end time.
	FlowManual
	// FlowRetroactive records a completed consultation.
	FlowRetroactive
)

// ProposedBooking carries the fields the validator inspects. End is only
// set on the manual flow.
type ProposedBooking struct {
	Date  time.Time
	Start Clock
	End   *Clock
}

// AcceptedBooking is the persisted-ready outcome of a successful
// validation; EndTime is the supplied end on the manual flow and
// StartTime plus one hour otherwise.
type AcceptedBooking struct {
	Date      string
	StartTime string
	EndTime   string
}

// ValidateBooking checks the proposal against every rule of its flow and
// reports all violations together rather than stopping at the first.
// bookedStarts are the "HH:MM" start times already taken for the same
// (doctor, date).
func (e *Engine) ValidateBooking(flow ValidationFlow, proposal ProposedBooking, bookedStarts []string) (AcceptedBooking, []ViolationKind) {
	var violations []ViolationKind

	today := dateOnly(e.Now())
	day := dateOnly(proposal.Date)

	if year := day.Year(); year < MinBookableYear || year > MaxBookableYear {
		violations = append(violations, YearOutOfRange)
	}

	switch flow {
	case FlowRetroactive:
		if day.After(today) {
			violations = append(violations, FutureDateNotAllowed)
		}
	default:
		if day.Before(today) {
			violations = append(violations, PastDate)
		}
		if isWeekend(day) {
			violations = append(violations, WeekendDate)
		}
	}

	if outOfBounds(flow, proposal.Start) {
		violations = append(violations, TimeOutOfBounds)
	}

	if flow == FlowManual && proposal.End != nil {
		if proposal.End.Minutes() <= proposal.Start.Minutes() {
			violations = append(violations, InvalidTimeRange)
		}
	}

	if flow != FlowRetroactive {
		label := proposal.Start.String()
		for _, taken := range bookedStarts {
			if taken == label {
				violations = append(violations, SlotConflict)
				break
			}
		}
	}

	if len(violations) > 0 {
		return AcceptedBooking{}, violations
	}

	end := Clock{H: proposal.Start.H + 1, M: proposal.Start.M}
	if flow == FlowManual && proposal.End != nil {
		end = *proposal.End
	}
	return AcceptedBooking{
		Date:      day.Format("2006-01-02"),
		StartTime: proposal.Start.String(),
		EndTime:   end.String(),
	}, nil
}

// outOfBounds rejects starts before clinic open and starts that leave no
// room for a full hour before close. The booking flow additionally rejects
// non-whole-hour starts since its slots are hour aligned.
func outOfBounds(flow ValidationFlow, start Clock) bool {
	openMinutes := ClinicOpenHour * 60
	closeMinutes := ClinicCloseHour * 60

	if start.Minutes() < openMinutes {
		return true
	}
	if start.Minutes()+60 > closeMinutes {
		return true
	}
	if flow == FlowBooking && start.M != 0 {
		return true
	}
	return false
}
