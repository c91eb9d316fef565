package mood

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moodflowapp/moodflow-backend/internal/analytics"
)

// Entry is one logged mood: a 1..10 score with an optional note and an
// optional media attachment URL. Media files live in the client's storage
// service; the backend only keeps the URL.
type Entry struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Score       int            `gorm:"not null" json:"mood_score"`
	EntryType   string         `gorm:"size:20;not null;default:'text'" json:"entry_type"`
	TextContent string         `gorm:"type:text" json:"text_content"`
	MediaURL    string         `gorm:"type:text" json:"media_url"`
	Tags        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Streak keeps denormalized per-user logging counters so the home screen
// can read them without scanning entries. The stats endpoint recomputes
// streaks from the full snapshot and is authoritative.
type Streak struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_streak_user" json:"user_id"`
	CurrentStreak int       `gorm:"default:0" json:"current_streak"`
	LongestStreak int       `gorm:"default:0" json:"longest_streak"`
	TotalEntries  int       `gorm:"default:0" json:"total_entries"`
	LastEntryDate time.Time `json:"last_entry_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var EntryTypes = []string{"text", "image", "voice"}

var (
	ErrInvalidScore     = errors.New("mood score must be between 1 and 10")
	ErrInvalidEntryType = errors.New("invalid entry type")
	ErrEntryNotFound    = errors.New("mood entry not found")
	ErrNotOwner         = errors.New("you do not own this mood entry")
)

// --- DTOs ---

type CreateEntryRequest struct {
	MoodScore   int      `json:"mood_score"`
	EntryType   string   `json:"entry_type"`
	TextContent string   `json:"text_content"`
	MediaURL    string   `json:"media_url"`
	Tags        []string `json:"tags"`
}

// Validate checks the request against the entry invariants.
func (r *CreateEntryRequest) Validate() error {
	if r.MoodScore < 1 || r.MoodScore > 10 {
		return ErrInvalidScore
	}
	if r.EntryType == "" {
		r.EntryType = "text"
	}
	if !isValidEntryType(r.EntryType) {
		return ErrInvalidEntryType
	}
	return nil
}

type EntryListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int64   `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}

type SearchResponse struct {
	Entries []Entry `json:"entries"`
	Total   int64   `json:"total"`
	Query   string  `json:"query"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}

type StreakResponse struct {
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	TotalEntries   int       `json:"total_entries"`
	LastEntryDate  time.Time `json:"last_entry_date"`
	HasLoggedToday bool      `json:"has_logged_today"`
}

type TrendsResponse struct {
	Trends []analytics.Trend `json:"trends"`
	Days   int               `json:"days"`
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

func isValidEntryType(entryType string) bool {
	for _, valid := range EntryTypes {
		if entryType == valid {
			return true
		}
	}
	return false
}

// toAnalytics maps stored entries into the engine's snapshot shape.
func toAnalytics(entries []Entry) []analytics.Entry {
	out := make([]analytics.Entry, len(entries))
	for i, e := range entries {
		out[i] = analytics.Entry{
			ID:        e.ID.String(),
			UserID:    e.UserID.String(),
			Score:     e.Score,
			EntryType: e.EntryType,
			Note:      e.TextContent,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}
