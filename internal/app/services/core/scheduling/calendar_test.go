package scheduling

import (
	"testing"
	"time"
)

func TestBuildMonthFebruary2026(t *testing.T) {
	// February 2026 has 28 days and starts on a Sunday.
	eng := fixedEngine(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))

	weeks := eng.BuildMonth(2026, time.February)
	if len(weeks) != 5 {
		t.Fatalf("expected 5 week rows, got %d", len(weeks))
	}
	for i, week := range weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has %d cells, want 7", i, len(week))
		}
	}

	// Sunday start means six leading padding cells.
	for i := 0; i < 6; i++ {
		if weeks[0][i].Day != 0 {
			t.Errorf("leading cell %d should be padding, got day %d", i, weeks[0][i].Day)
		}
	}
	if weeks[0][6].Day != 1 {
		t.Errorf("day 1 should sit in the Sunday column, got %d", weeks[0][6].Day)
	}

	last := weeks[4]
	if last[5].Day != 28 {
		t.Errorf("day 28 misplaced, got %d", last[5].Day)
	}
	if last[6].Day != 0 {
		t.Errorf("trailing cell should be padding, got day %d", last[6].Day)
	}
}

func TestBuildMonthPastTagging(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))

	weeks := eng.BuildMonth(2026, time.February)
	var day9, day10, day11 CalendarCell
	for _, week := range weeks {
		for _, cell := range week {
			switch cell.Day {
			case 9:
				day9 = cell
			case 10:
				day10 = cell
			case 11:
				day11 = cell
			}
		}
	}

	if !day9.Past {
		t.Error("day 9 should be tagged past")
	}
	if day10.Past {
		t.Error("today must not be tagged past")
	}
	if day11.Past {
		t.Error("day 11 must not be tagged past")
	}
}

func TestCalendarCellToken(t *testing.T) {
	if got := (CalendarCell{}).Token(); got != "" {
		t.Errorf("padding token = %q, want empty", got)
	}
	if got := (CalendarCell{Day: 3}).Token(); got != "03" {
		t.Errorf("day token = %q, want 03", got)
	}
}

func TestClampMonth(t *testing.T) {
	eng := fixedEngine(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		inYear    int
		inMonth   time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{2026, time.February, 2026, time.March}, // before current month
		{2025, time.December, 2026, time.March},
		{2026, time.March, 2026, time.March},
		{2028, time.July, 2028, time.July},
		{2031, time.January, 2030, time.December}, // past the bookable horizon
	}
	for _, tt := range tests {
		gotYear, gotMonth := eng.ClampMonth(tt.inYear, tt.inMonth)
		if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
			t.Errorf("ClampMonth(%d, %s) = (%d, %s), want (%d, %s)",
				tt.inYear, tt.inMonth, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
		}
	}
}
