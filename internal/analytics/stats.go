// Package analytics computes mood statistics, trend series and insight
// messages from a snapshot of mood entries. Every function is pure: the
// reference time is an explicit parameter and calendar bucketing (weekday,
// streak days, trend days, time of day) happens in now.Location().
package analytics

import (
	"math"
	"sort"
	"time"
)

// Entry is the engine's view of one mood log. The storage layer maps its
// GORM model into this shape before calling the engine.
type Entry struct {
	ID        string
	UserID    string
	Score     int
	EntryType string
	Note      string
	CreatedAt time.Time
}

// TimeOfDayAverages holds the mean score per fixed hour bucket:
// morning [6,12), afternoon [12,18), evening [18,22), night otherwise.
type TimeOfDayAverages struct {
	Morning   float64 `json:"morning"`
	Afternoon float64 `json:"afternoon"`
	Evening   float64 `json:"evening"`
	Night     float64 `json:"night"`
}

// Statistics is the aggregate summary of a set of mood entries.
// Average is rounded to one decimal and StandardDeviation (population) to
// two; all other numeric fields are exact.
type Statistics struct {
	Average           float64            `json:"average"`
	Median            float64            `json:"median"`
	Mode              int                `json:"mode"`
	Min               int                `json:"min"`
	Max               int                `json:"max"`
	StandardDeviation float64            `json:"standard_deviation"`
	TotalEntries      int                `json:"total_entries"`
	CurrentStreak     int                `json:"current_streak"`
	LongestStreak     int                `json:"longest_streak"`
	Distribution      map[int]int        `json:"mood_distribution"`
	WeekdayAverages   map[string]float64 `json:"weekday_averages"`
	TimeOfDay         TimeOfDayAverages  `json:"time_of_day_averages"`
}

// weekdayNames is the canonical weekday order used for zero-filling and
// for tie-breaks in insight selection.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Calculate computes the full statistics summary for a snapshot of entries.
// An empty snapshot returns the neutral zero-filled Statistics; this is a
// defined case, not an error. Out-of-range scores still count toward the
// numeric summaries but are excluded from the 1..10 distribution.
func Calculate(entries []Entry, now time.Time) Statistics {
	stats := Statistics{
		Distribution:    emptyDistribution(),
		WeekdayAverages: emptyWeekdayAverages(),
	}
	if len(entries) == 0 {
		return stats
	}

	loc := now.Location()

	scores := make([]int, len(entries))
	sum := 0
	for i, e := range entries {
		scores[i] = e.Score
		sum += e.Score
	}
	mean := float64(sum) / float64(len(scores))

	sorted := append([]int(nil), scores...)
	sort.Ints(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	} else {
		median = float64(sorted[n/2])
	}

	frequency := make(map[int]int, 10)
	for _, s := range scores {
		frequency[s]++
	}

	// Mode ties resolve to the lowest score.
	values := make([]int, 0, len(frequency))
	for s := range frequency {
		values = append(values, s)
	}
	sort.Ints(values)
	mode, modeCount := 0, 0
	for _, s := range values {
		if frequency[s] > modeCount {
			mode, modeCount = s, frequency[s]
		}
	}

	variance := 0.0
	for _, s := range scores {
		variance += (float64(s) - mean) * (float64(s) - mean)
	}
	variance /= float64(len(scores))

	for s := 1; s <= 10; s++ {
		stats.Distribution[s] = frequency[s]
	}

	weekdaySums := make(map[string]int, 7)
	weekdayCounts := make(map[string]int, 7)
	var todSums, todCounts [4]int
	for _, e := range entries {
		local := e.CreatedAt.In(loc)
		day := local.Weekday().String()
		weekdaySums[day] += e.Score
		weekdayCounts[day]++

		b := bucketOf(local.Hour())
		todSums[b] += e.Score
		todCounts[b]++
	}
	for _, day := range weekdayNames {
		if weekdayCounts[day] > 0 {
			stats.WeekdayAverages[day] = float64(weekdaySums[day]) / float64(weekdayCounts[day])
		}
	}
	stats.TimeOfDay = TimeOfDayAverages{
		Morning:   bucketAverage(todSums[0], todCounts[0]),
		Afternoon: bucketAverage(todSums[1], todCounts[1]),
		Evening:   bucketAverage(todSums[2], todCounts[2]),
		Night:     bucketAverage(todSums[3], todCounts[3]),
	}

	current, longest := calculateStreaks(entries, now)

	stats.Average = math.Round(mean*10) / 10
	stats.Median = median
	stats.Mode = mode
	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	stats.StandardDeviation = math.Round(math.Sqrt(variance)*100) / 100
	stats.TotalEntries = len(entries)
	stats.CurrentStreak = current
	stats.LongestStreak = longest
	return stats
}

// calculateStreaks collapses entries to unique calendar days and measures
// runs of exactly consecutive days. The current streak is the run ending at
// the most recent logged day, and counts only if that day is today or
// yesterday relative to now; otherwise the streak is broken and reports 0.
func calculateStreaks(entries []Entry, now time.Time) (current, longest int) {
	if len(entries) == 0 {
		return 0, 0
	}

	loc := now.Location()
	ordered := append([]Entry(nil), entries...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	// Unique logged days, ascending. Same-day duplicates count once.
	var days []time.Time
	for _, e := range ordered {
		d := dateOf(e.CreatedAt.In(loc))
		if len(days) == 0 || !d.Equal(days[len(days)-1]) {
			days = append(days, d)
		}
	}

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	today := dateOf(now)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		current = run
	}
	return current, longest
}

// dateOf truncates a time to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func bucketOf(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0 // morning
	case hour >= 12 && hour < 18:
		return 1 // afternoon
	case hour >= 18 && hour < 22:
		return 2 // evening
	default:
		return 3 // night
	}
}

func bucketAverage(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func emptyDistribution() map[int]int {
	dist := make(map[int]int, 10)
	for s := 1; s <= 10; s++ {
		dist[s] = 0
	}
	return dist
}

func emptyWeekdayAverages() map[string]float64 {
	averages := make(map[string]float64, 7)
	for _, day := range weekdayNames {
		averages[day] = 0
	}
	return averages
}
