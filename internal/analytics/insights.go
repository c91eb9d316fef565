package analytics

import "fmt"

// Insights derives short observations from a statistics summary and a trend
// series. Rules run in a fixed order (stability, streak, best weekday, best
// time of day, recent shift) because the client renders only the first few
// messages. Ties on weekday pick the earliest day Sunday..Saturday; ties on
// time of day pick the earliest of morning, afternoon, evening, night.
// Empty statistics produce no messages.
func Insights(stats Statistics, trends []Trend) []string {
	insights := []string{}
	if stats.TotalEntries == 0 {
		return insights
	}

	switch {
	case stats.StandardDeviation < 1.5:
		insights = append(insights, "Your mood has been very stable recently. Great emotional balance!")
	case stats.StandardDeviation > 2.5:
		insights = append(insights, "Your moods have been quite variable. Consider tracking what triggers these changes.")
	}

	if stats.CurrentStreak >= 7 {
		insights = append(insights, fmt.Sprintf("Amazing! You've logged your mood for %d days straight!", stats.CurrentStreak))
	} else if stats.CurrentStreak == 0 {
		insights = append(insights, "Welcome back! Let's start a new streak today.")
	}

	bestDay, bestDayAvg := "", 0.0
	for _, day := range weekdayNames {
		if avg := stats.WeekdayAverages[day]; avg > bestDayAvg {
			bestDay, bestDayAvg = day, avg
		}
	}
	if bestDay != "" {
		insights = append(insights, fmt.Sprintf("%s tends to be your happiest day (avg: %.1f/10)", bestDay, bestDayAvg))
	}

	buckets := []struct {
		name string
		avg  float64
	}{
		{"morning", stats.TimeOfDay.Morning},
		{"afternoon", stats.TimeOfDay.Afternoon},
		{"evening", stats.TimeOfDay.Evening},
		{"night", stats.TimeOfDay.Night},
	}
	bestTime, bestTimeAvg := "", 0.0
	for _, b := range buckets {
		if b.avg > bestTimeAvg {
			bestTime, bestTimeAvg = b.name, b.avg
		}
	}
	if bestTime != "" {
		insights = append(insights, fmt.Sprintf("You tend to feel best in the %s (avg: %.1f/10)", bestTime, bestTimeAvg))
	}

	if len(trends) >= 3 {
		recent := trends[len(trends)-3:]
		sum := 0
		for _, t := range recent {
			sum += t.Score
		}
		recentAvg := float64(sum) / float64(len(recent))
		if recentAvg > stats.Average+1 {
			insights = append(insights, "Your mood has been improving lately! Keep up the positive momentum.")
		} else if recentAvg < stats.Average-1 {
			insights = append(insights, "Your recent moods have been lower than usual. Remember to practice self-care.")
		}
	}

	return insights
}
