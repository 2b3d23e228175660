package specialties

import "testing"

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name       string
		days       string
		start, end string
		wantErr    bool
	}{
		{"weekday range with whole hours", "Lunes a Viernes", "08:00", "12:00", false},
		{"early start clips to opening hour", "Lunes", "07:30", "12:00", false},
		{"mid-hour start", "Lunes a Viernes", "08:30", "12:00", true},
		{"mid-hour end", "Lunes a Viernes", "09:00", "12:30", true},
		{"unknown day name", "Funday", "08:00", "12:00", true},
		{"window outside clinic hours", "Lunes", "19:00", "21:00", true},
		{"unparseable bound", "Lunes", "nine", "12:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSchedule(tt.days, tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSchedule(%q, %q, %q) error = %v, wantErr %v",
					tt.days, tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}
