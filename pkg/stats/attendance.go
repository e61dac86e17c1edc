package stats

import "time"

// Attendance statuses as stored on attendance records.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// PresentStrict counts only "present" records. One set of dashboards uses
// this numerator.
func PresentStrict(statuses []string) int {
	n := 0
	for _, s := range statuses {
		if s == StatusPresent {
			n++
		}
	}
	return n
}

// PresentInclusiveOfLate counts "present" and "late" records. The other set
// of dashboards uses this numerator. Both are exposed deliberately; callers
// must pick one by name.
func PresentInclusiveOfLate(statuses []string) int {
	n := 0
	for _, s := range statuses {
		if s == StatusPresent || s == StatusLate {
			n++
		}
	}
	return n
}

// DaysPassedInYear returns how many days of now's year have elapsed,
// including today. This is the denominator for attendance percentages.
func DaysPassedInYear(now time.Time) int {
	return now.YearDay()
}

// AttendancePercent is presentDays over totalDays as a percentage, rounded
// to two decimals. A non-positive denominator yields 0.
func AttendancePercent(presentDays, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	return Round2(float64(presentDays) / float64(totalDays) * 100)
}
