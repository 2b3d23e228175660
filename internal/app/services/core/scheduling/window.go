package scheduling

// ResolveWindow clips a specialty's own window to the clinic operating
// bounds: effective start is the later of the two starts, effective end the
// earlier of the two ends. A window that collapses after clipping (start at
// or past end) comes back empty, which readers render as zero slots rather
// than an error. Unparseable bounds also yield the empty window.
func ResolveWindow(windowStart, windowEnd string) Window {
	start, ok1 := ParseClock(windowStart)
	end, ok2 := ParseClock(windowEnd)
	if !ok1 || !ok2 {
		return Window{}
	}

	clinicOpen := Clock{H: ClinicOpenHour}
	clinicClose := Clock{H: ClinicCloseHour}

	if start.Minutes() < clinicOpen.Minutes() {
		start = clinicOpen
	}
	if end.Minutes() > clinicClose.Minutes() {
		end = clinicClose
	}

	if start.Minutes() >= end.Minutes() {
		return Window{}
	}
	return Window{Start: start, End: end}
}
