package attendance

import (
	"testing"
	"time"
)

func TestBuildStatsReportsBothMetrics(t *testing.T) {
	// Day 100 of the year.
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	if now.YearDay() != 100 {
		t.Fatalf("expected day 100, got %d", now.YearDay())
	}

	statuses := []string{"present", "present", "late", "absent", "late"}
	s := BuildStats("u-1", TypePlayers, statuses, now)

	if s.TotalMarked != 5 {
		t.Errorf("TotalMarked = %d, want 5", s.TotalMarked)
	}
	if s.PresentStrict != 2 {
		t.Errorf("PresentStrict = %d, want 2", s.PresentStrict)
	}
	if s.PresentInclusiveOfLate != 4 {
		t.Errorf("PresentInclusiveOfLate = %d, want 4", s.PresentInclusiveOfLate)
	}
	if s.PercentStrict != 2.0 {
		t.Errorf("PercentStrict = %v, want 2", s.PercentStrict)
	}
	if s.PercentInclusiveOfLate != 4.0 {
		t.Errorf("PercentInclusiveOfLate = %v, want 4", s.PercentInclusiveOfLate)
	}
	// The two metrics must stay distinct; unifying them silently is exactly
	// what this split exists to prevent.
	if s.PercentStrict == s.PercentInclusiveOfLate {
		t.Error("strict and late-inclusive percentages should differ for this input")
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	s := BuildStats("u-1", TypeCoaches, nil, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))
	if s.TotalMarked != 0 || s.PercentStrict != 0 || s.PercentInclusiveOfLate != 0 {
		t.Errorf("empty stats = %+v, want zeroes", s)
	}
}
