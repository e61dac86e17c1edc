package stats

import (
	"testing"
	"time"
)

func TestPresentCounters(t *testing.T) {
	statuses := []string{
		StatusPresent, StatusLate, StatusAbsent, StatusPresent, StatusLate,
	}
	if got := PresentStrict(statuses); got != 2 {
		t.Errorf("PresentStrict = %d, want 2", got)
	}
	if got := PresentInclusiveOfLate(statuses); got != 4 {
		t.Errorf("PresentInclusiveOfLate = %d, want 4", got)
	}
}

func TestAttendancePercent(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{"two decimals", 1, 3, 33.33},
		{"full attendance", 10, 10, 100},
		{"zero denominator", 5, 0, 0},
		{"negative denominator", 5, -1, 0},
		{"no presence", 0, 120, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendancePercent(tt.present, tt.total); got != tt.want {
				t.Errorf("AttendancePercent(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestDaysPassedInYear(t *testing.T) {
	d := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	if got := DaysPassedInYear(d); got != 32 {
		t.Errorf("DaysPassedInYear(Feb 1) = %d, want 32", got)
	}
}
