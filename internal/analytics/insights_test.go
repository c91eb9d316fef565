package analytics

import (
	"strings"
	"testing"
)

func statsWith(mutate func(*Statistics)) Statistics {
	stats := Statistics{
		Distribution:    emptyDistribution(),
		WeekdayAverages: emptyWeekdayAverages(),
	}
	if mutate != nil {
		mutate(&stats)
	}
	return stats
}

func TestInsightsEmptyStatistics(t *testing.T) {
	if got := Insights(statsWith(nil), nil); len(got) != 0 {
		t.Errorf("expected no insights for empty statistics, got %v", got)
	}
}

func TestInsightsOrdering(t *testing.T) {
	stats := statsWith(func(s *Statistics) {
		s.TotalEntries = 20
		s.Average = 6.0
		s.StandardDeviation = 1.0
		s.CurrentStreak = 10
		s.WeekdayAverages["Tuesday"] = 7.5
		s.WeekdayAverages["Friday"] = 6.2
		s.TimeOfDay.Morning = 7.0
		s.TimeOfDay.Evening = 5.5
	})
	// Recent trend mean 6.33 stays within one point of the 6.0 average, so
	// no shift message fires.
	trends := []Trend{{Score: 6}, {Score: 6}, {Score: 7}}

	got := Insights(stats, trends)
	if len(got) != 4 {
		t.Fatalf("expected exactly 4 insights, got %d: %v", len(got), got)
	}
	checks := []string{"stable", "10 days straight", "Tuesday", "morning"}
	for i, want := range checks {
		if !strings.Contains(got[i], want) {
			t.Errorf("insight %d: expected to mention %q, got %q", i, want, got[i])
		}
	}
}

func TestInsightsStability(t *testing.T) {
	tests := []struct {
		name   string
		stddev float64
		want   string
	}{
		{"stable", 1.0, "very stable"},
		{"variable", 3.0, "quite variable"},
		{"neither", 2.0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := statsWith(func(s *Statistics) {
				s.TotalEntries = 5
				s.StandardDeviation = tt.stddev
				s.CurrentStreak = 3 // keep the streak rule silent
			})
			got := Insights(stats, nil)
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("expected no messages, got %v", got)
				}
				return
			}
			if len(got) != 1 || !strings.Contains(got[0], tt.want) {
				t.Errorf("expected one message containing %q, got %v", tt.want, got)
			}
		})
	}
}

func TestInsightsStreakEncouragement(t *testing.T) {
	stats := statsWith(func(s *Statistics) {
		s.TotalEntries = 5
		s.StandardDeviation = 2.0
		s.CurrentStreak = 0
	})
	got := Insights(stats, nil)
	if len(got) != 1 || !strings.Contains(got[0], "Welcome back") {
		t.Errorf("expected restart encouragement, got %v", got)
	}
}

func TestInsightsWeekdayTieBreak(t *testing.T) {
	stats := statsWith(func(s *Statistics) {
		s.TotalEntries = 5
		s.StandardDeviation = 2.0
		s.CurrentStreak = 3
		s.WeekdayAverages["Friday"] = 7.0
		s.WeekdayAverages["Monday"] = 7.0
	})
	got := Insights(stats, nil)
	if len(got) != 1 || !strings.HasPrefix(got[0], "Monday") {
		// Sunday..Saturday order: Monday precedes Friday.
		t.Errorf("expected Monday to win the tie, got %v", got)
	}
}

func TestInsightsTimeOfDayTieBreak(t *testing.T) {
	stats := statsWith(func(s *Statistics) {
		s.TotalEntries = 5
		s.StandardDeviation = 2.0
		s.CurrentStreak = 3
		s.TimeOfDay.Morning = 6.5
		s.TimeOfDay.Night = 6.5
	})
	got := Insights(stats, nil)
	if len(got) != 1 || !strings.Contains(got[0], "morning") {
		t.Errorf("expected morning to win the tie, got %v", got)
	}
}

func TestInsightsRecentShift(t *testing.T) {
	base := func(s *Statistics) {
		s.TotalEntries = 10
		s.Average = 5.0
		s.StandardDeviation = 2.0
		s.CurrentStreak = 3
	}

	improving := Insights(statsWith(base), []Trend{{Score: 7}, {Score: 7}, {Score: 7}})
	if len(improving) != 1 || !strings.Contains(improving[0], "improving") {
		t.Errorf("expected improvement message, got %v", improving)
	}

	declining := Insights(statsWith(base), []Trend{{Score: 3}, {Score: 3}, {Score: 3}})
	if len(declining) != 1 || !strings.Contains(declining[0], "self-care") {
		t.Errorf("expected self-care message, got %v", declining)
	}

	// Exactly one point above average does not cross the threshold.
	flat := Insights(statsWith(base), []Trend{{Score: 6}, {Score: 6}, {Score: 6}})
	if len(flat) != 0 {
		t.Errorf("expected no shift message at the threshold, got %v", flat)
	}

	short := Insights(statsWith(base), []Trend{{Score: 9}, {Score: 9}})
	if len(short) != 0 {
		t.Errorf("expected no shift message with fewer than 3 points, got %v", short)
	}
}
