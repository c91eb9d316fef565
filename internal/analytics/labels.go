package analytics

// MoodLabel pairs a mood score with its display emoji and label.
type MoodLabel struct {
	Score int    `json:"score"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// MoodLabels is the fixed display table for scores 1..10, lowest first.
var MoodLabels = []MoodLabel{
	{1, "😭", "Devastated"},
	{2, "😢", "Very Sad"},
	{3, "😞", "Sad"},
	{4, "😟", "Down"},
	{5, "😐", "Neutral"},
	{6, "🙂", "Good"},
	{7, "😊", "Happy"},
	{8, "😍", "Great"},
	{9, "🤩", "Amazing"},
	{10, "😇", "Euphoric"},
}

// LabelFor returns the display entry for a score. Scores outside 1..10
// fall back to the Neutral row.
func LabelFor(score int) MoodLabel {
	for _, l := range MoodLabels {
		if l.Score == score {
			return l
		}
	}
	return MoodLabels[4]
}
