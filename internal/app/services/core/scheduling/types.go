package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clinic-wide operating bounds. Every specialty window and every booking
// date is clipped or validated against these.
const (
	ClinicOpenHour  = 8
	ClinicCloseHour = 18

	MinBookableYear = 2000
	MaxBookableYear = 2030
)

// SlotDuration is the fixed appointment length; slots are aligned to it.
const SlotDuration = time.Hour

// Clock holds a local wall time (hour and minute).
type Clock struct {
	H int
	M int
}

func (c Clock) Minutes() int {
	return c.H*60 + c.M
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.H, c.M)
}

// Window is an inclusive start and exclusive end wall-clock range for a
// single day. The zero value is the empty window.
type Window struct {
	Start Clock
	End   Clock
}

func (w Window) Empty() bool {
	return w.Start.Minutes() >= w.End.Minutes()
}

// ParseClock accepts "HH:MM" (also tolerating "HH.MM") and rejects values
// outside the 24-hour clock.
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

// SpecialtySchedule is the raw schedule configuration read off a specialty:
// the free-text working-days expression plus the "HH:MM" window bounds.
type SpecialtySchedule struct {
	WorkingDays string
	WindowStart string
	WindowEnd   string
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
