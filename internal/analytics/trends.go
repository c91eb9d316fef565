package analytics

import (
	"math"
	"sort"
	"time"
)

// Trend is one day's aggregated mood within a requested window.
type Trend struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// Trends buckets entries into calendar days within the last windowDays,
// starting at the midnight-aligned boundary in now.Location(). Each day's
// score is the half-up rounded mean (6.5 rounds to 7); emoji and label come
// from the mood label table. Note carries the text of the day's latest
// entry. Days without entries produce no element, so the series is sparse.
func Trends(entries []Entry, windowDays int, now time.Time) []Trend {
	loc := now.Location()
	start := dateOf(now).AddDate(0, 0, -windowDays)

	type dayGroup struct {
		total    int
		count    int
		latest   Entry
		hasEntry bool
	}
	groups := make(map[string]*dayGroup)
	for _, e := range entries {
		local := e.CreatedAt.In(loc)
		if local.Before(start) {
			continue
		}
		key := local.Format("2006-01-02")
		g := groups[key]
		if g == nil {
			g = &dayGroup{}
			groups[key] = g
		}
		g.total += e.Score
		g.count++
		// Equal timestamps: the later entry in input order wins.
		if !g.hasEntry || !e.CreatedAt.Before(g.latest.CreatedAt) {
			g.latest = e
			g.hasEntry = true
		}
	}

	trends := make([]Trend, 0, len(groups))
	for key, g := range groups {
		score := int(math.Round(float64(g.total) / float64(g.count)))
		label := LabelFor(score)
		trends = append(trends, Trend{
			Date:  key,
			Score: score,
			Emoji: label.Emoji,
			Label: label.Label,
			Note:  g.latest.Note,
		})
	}

	// ISO date keys sort chronologically.
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	return trends
}
