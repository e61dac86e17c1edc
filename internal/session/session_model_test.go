package session

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	base := Session{
		Date:      "2026-08-28",
		StartTime: "17:00",
		EndTime:   "18:30",
		Status:    StatusUpcoming,
	}

	at := func(hhmm string) time.Time {
		ts, err := time.Parse(DateLayout+" "+TimeLayout, "2026-08-28 "+hhmm)
		if err != nil {
			t.Fatalf("bad test time: %v", err)
		}
		return ts
	}

	tests := []struct {
		name string
		mod  func(s *Session)
		now  time.Time
		want string
	}{
		{"before start", nil, at("16:59"), StatusUpcoming},
		{"at start", nil, at("17:00"), StatusOngoing},
		{"mid session", nil, at("18:00"), StatusOngoing},
		{"after end", nil, at("18:30"), StatusCompleted},
		{
			"cancelled sticks regardless of clock",
			func(s *Session) { s.Status = StatusCancelled },
			at("18:00"),
			StatusCancelled,
		},
		{
			"occurrence date wins over template date",
			func(s *Session) { s.OccurrenceDate = "2026-08-29" },
			at("18:00"),
			StatusUpcoming,
		},
		{
			"unparseable date falls back to stored status",
			func(s *Session) { s.Date = "tomorrow" },
			at("18:00"),
			StatusUpcoming,
		},
		{
			"midnight-crossing session still ongoing",
			func(s *Session) { s.StartTime = "23:00"; s.EndTime = "00:30" },
			at("23:30"),
			StatusOngoing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			if tt.mod != nil {
				tt.mod(&s)
			}
			if got := DeriveStatus(&s, tt.now); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"ninety minutes", "17:00", "18:30", 90},
		{"crosses midnight", "23:00", "00:30", 90},
		{"unparseable", "5pm", "6pm", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{StartTime: tt.start, EndTime: tt.end}
			if got := DurationMinutes(&s); got != tt.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpcomingOccurrences(t *testing.T) {
	// 2026-08-28 is a Friday.
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	got := UpcomingOccurrences([]string{"Friday", "Monday"}, now, 7)
	want := []string{"2026-08-28", "2026-08-31"}
	if len(got) != len(want) {
		t.Fatalf("UpcomingOccurrences = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("occurrence[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := UpcomingOccurrences(nil, now, 7); len(got) != 0 {
		t.Errorf("no recurring days should yield no occurrences, got %v", got)
	}
}
