package analytics

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func entryAt(score int, at time.Time) Entry {
	return Entry{Score: score, EntryType: "text", CreatedAt: at}
}

func TestCalculateEmpty(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	stats := Calculate(nil, now)

	if stats.Average != 0 || stats.Median != 0 || stats.Mode != 0 ||
		stats.Min != 0 || stats.Max != 0 || stats.StandardDeviation != 0 {
		t.Errorf("expected zero numeric summary, got %+v", stats)
	}
	if stats.TotalEntries != 0 || stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if len(stats.Distribution) != 10 {
		t.Fatalf("expected 10 distribution keys, got %d", len(stats.Distribution))
	}
	for s := 1; s <= 10; s++ {
		if stats.Distribution[s] != 0 {
			t.Errorf("score %d: expected count 0, got %d", s, stats.Distribution[s])
		}
	}
	if len(stats.WeekdayAverages) != 7 {
		t.Fatalf("expected 7 weekday keys, got %d", len(stats.WeekdayAverages))
	}
	for day, avg := range stats.WeekdayAverages {
		if avg != 0 {
			t.Errorf("%s: expected average 0, got %v", day, avg)
		}
	}
}

func TestCalculateIdenticalScores(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryAt(7, now.Add(-time.Duration(i)*time.Hour)))
	}

	stats := Calculate(entries, now)
	if stats.Average != 7 || stats.Median != 7 || stats.Mode != 7 {
		t.Errorf("expected average=median=mode=7, got %v/%v/%v", stats.Average, stats.Median, stats.Mode)
	}
	if stats.Min != 7 || stats.Max != 7 {
		t.Errorf("expected min=max=7, got %d/%d", stats.Min, stats.Max)
	}
	if stats.StandardDeviation != 0 {
		t.Errorf("expected stddev 0, got %v", stats.StandardDeviation)
	}
	if stats.Distribution[7] != 10 {
		t.Errorf("expected distribution[7]=10, got %d", stats.Distribution[7])
	}
}

func TestCalculateWeekScenario(t *testing.T) {
	// Seven daily entries, scores 5,6,7,8,7,6,9, six days ago through today.
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	scores := []int{5, 6, 7, 8, 7, 6, 9}
	var entries []Entry
	for i, s := range scores {
		entries = append(entries, entryAt(s, now.AddDate(0, 0, i-6)))
	}

	stats := Calculate(entries, now)
	if stats.Average != 6.9 {
		t.Errorf("expected average 6.9, got %v", stats.Average)
	}
	if stats.Median != 7 {
		t.Errorf("expected median 7, got %v", stats.Median)
	}
	if stats.Mode != 6 {
		// 6 and 7 both appear twice; the lower score wins.
		t.Errorf("expected mode 6, got %d", stats.Mode)
	}
	if stats.Min != 5 || stats.Max != 9 {
		t.Errorf("expected min 5 max 9, got %d/%d", stats.Min, stats.Max)
	}
	if stats.StandardDeviation != 1.25 {
		t.Errorf("expected stddev 1.25, got %v", stats.StandardDeviation)
	}
	if stats.CurrentStreak != 7 || stats.LongestStreak != 7 {
		t.Errorf("expected streaks 7/7, got %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.TotalEntries != 7 {
		t.Errorf("expected 7 entries, got %d", stats.TotalEntries)
	}
}

func TestCalculateOrderIndependence(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	var entries []Entry
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		entries = append(entries, entryAt(1+rng.Intn(10), now.Add(-time.Duration(rng.Intn(720))*time.Hour)))
	}

	first := Calculate(entries, now)

	shuffled := append([]Entry(nil), entries...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	second := Calculate(shuffled, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("statistics differ across permutations:\n%+v\n%+v", first, second)
	}
}

func TestCalculateModeTieBreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	entries := []Entry{
		entryAt(8, now), entryAt(3, now), entryAt(8, now), entryAt(3, now),
	}

	stats := Calculate(entries, now)
	if stats.Mode != 3 {
		t.Errorf("expected lowest tied score 3 as mode, got %d", stats.Mode)
	}
	if stats.Median != 5.5 {
		t.Errorf("expected median 5.5, got %v", stats.Median)
	}
}

func TestCalculateStreaks(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name    string
		offsets []int
		current int
		longest int
	}{
		{"three consecutive ending today", []int{-2, -1, 0}, 3, 3},
		{"three consecutive ending yesterday", []int{-3, -2, -1}, 3, 3},
		{"three consecutive ending three days ago", []int{-5, -4, -3}, 0, 3},
		{"same day five times", []int{0, 0, 0, 0, 0}, 1, 1},
		{"gap keeps longest run", []int{-7, -6, -5, -1, 0}, 2, 3},
		{"single entry today", []int{0}, 1, 1},
		{"single stale entry", []int{-4}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []Entry
			for _, off := range tt.offsets {
				entries = append(entries, entryAt(5, day(off)))
			}
			stats := Calculate(entries, now)
			if stats.CurrentStreak != tt.current || stats.LongestStreak != tt.longest {
				t.Errorf("expected %d/%d, got %d/%d",
					tt.current, tt.longest, stats.CurrentStreak, stats.LongestStreak)
			}
		})
	}
}

func TestCalculateHistogramCompleteness(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	stats := Calculate([]Entry{entryAt(4, now)}, now)

	if len(stats.Distribution) != 10 {
		t.Fatalf("expected exactly 10 keys, got %d", len(stats.Distribution))
	}
	for s := 1; s <= 10; s++ {
		want := 0
		if s == 4 {
			want = 1
		}
		if stats.Distribution[s] != want {
			t.Errorf("score %d: expected %d, got %d", s, want, stats.Distribution[s])
		}
	}
}

func TestCalculateOutOfRangeScores(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	entries := []Entry{entryAt(12, now), entryAt(12, now), entryAt(4, now)}

	stats := Calculate(entries, now)
	if stats.Max != 12 || stats.Min != 4 {
		t.Errorf("extrema should include out-of-range scores, got min %d max %d", stats.Min, stats.Max)
	}
	if stats.Mode != 12 {
		t.Errorf("mode should include out-of-range scores, got %d", stats.Mode)
	}
	if len(stats.Distribution) != 10 {
		t.Errorf("distribution must stay on the 1..10 domain, got %d keys", len(stats.Distribution))
	}
	if stats.Distribution[4] != 1 {
		t.Errorf("expected distribution[4]=1, got %d", stats.Distribution[4])
	}
}

func TestCalculateWeekdayAndTimeOfDay(t *testing.T) {
	// Reference zone UTC+10: instants stored in UTC land on the next local
	// day and in different hour buckets.
	zone := time.FixedZone("UTC+10", 10*3600)
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, zone) // Tuesday evening

	entries := []Entry{
		// Monday 23:00 UTC = Tuesday 09:00 local (morning).
		entryAt(8, time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)),
		// Tuesday 04:00 UTC = Tuesday 14:00 local (afternoon).
		entryAt(6, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)),
		// Tuesday 09:00 UTC = Tuesday 19:00 local (evening).
		entryAt(4, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		// Tuesday 13:00 UTC = Tuesday 23:00 local (night).
		entryAt(2, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)),
	}

	stats := Calculate(entries, now)
	if stats.WeekdayAverages["Tuesday"] != 5 {
		t.Errorf("expected Tuesday average 5, got %v", stats.WeekdayAverages["Tuesday"])
	}
	if stats.WeekdayAverages["Monday"] != 0 {
		t.Errorf("expected no Monday entries in local time, got %v", stats.WeekdayAverages["Monday"])
	}
	tod := stats.TimeOfDay
	if tod.Morning != 8 || tod.Afternoon != 6 || tod.Evening != 4 || tod.Night != 2 {
		t.Errorf("unexpected time-of-day averages: %+v", tod)
	}
}
