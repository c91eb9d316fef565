package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/moodflowapp/moodflow-backend/internal/analytics"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateEntry stores a new mood entry and updates the user's streak row.
func (s *Service) CreateEntry(userID uuid.UUID, req CreateEntryRequest) (*Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tags := datatypes.JSON([]byte("[]"))
	if len(req.Tags) > 0 {
		if b, err := json.Marshal(req.Tags); err == nil {
			tags = datatypes.JSON(b)
		}
	}

	entry := Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Score:       req.MoodScore,
		EntryType:   req.EntryType,
		TextContent: req.TextContent,
		MediaURL:    req.MediaURL,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	if err := s.updateStreak(userID); err != nil {
		slog.Error("failed to update streak", "user_id", userID, "error", err)
	}

	return &entry, nil
}

// GetEntries returns the user's entries, newest first.
func (s *Service) GetEntries(userID uuid.UUID, limit, offset int) ([]Entry, int64, error) {
	var entries []Entry
	var total int64

	s.db.Model(&Entry{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// SearchEntries matches the note text case-insensitively.
func (s *Service) SearchEntries(userID uuid.UUID, query string, limit, offset int) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, errors.New("search query must be at least 2 characters")
	}

	var entries []Entry
	var total int64
	pattern := "%" + query + "%"

	if err := s.db.Model(&Entry{}).
		Where("user_id = ? AND text_content ILIKE ?", userID, pattern).
		Count(&total).Error; err != nil {
		return nil, errors.New("failed to count search results")
	}

	if err := s.db.
		Where("user_id = ? AND text_content ILIKE ?", userID, pattern).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, errors.New("failed to fetch search results")
	}

	return &SearchResponse{
		Entries: entries,
		Total:   total,
		Query:   query,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *Service) GetEntry(userID, entryID uuid.UUID) (*Entry, error) {
	var entry Entry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if entry.UserID != userID {
		return nil, ErrNotOwner
	}

	return &entry, nil
}

func (s *Service) DeleteEntry(userID, entryID uuid.UUID) error {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return err
	}

	return s.db.Delete(entry).Error
}

// TodayEntry returns the user's most recent entry from the current UTC day,
// or nil when nothing has been logged yet.
func (s *Service) TodayEntry(userID uuid.UUID) (*Entry, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	var entry Entry
	err := s.db.Where("user_id = ? AND created_at >= ?", userID, today).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check today's entry: %w", err)
	}
	return &entry, nil
}

// GetStreak returns the denormalized streak row, creating a zeroed one for
// first-time users.
func (s *Service) GetStreak(userID uuid.UUID) (*Streak, error) {
	var streak Streak
	err := s.db.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = Streak{
			ID:     uuid.New(),
			UserID: userID,
		}
		if createErr := s.db.Create(&streak).Error; createErr != nil {
			return nil, createErr
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (s *Service) updateStreak(userID uuid.UUID) error {
	streak, err := s.GetStreak(userID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	lastDay := streak.LastEntryDate.UTC().Truncate(24 * time.Hour)

	switch {
	case streak.LastEntryDate.IsZero():
		streak.CurrentStreak = 1
	case lastDay.Equal(today):
		// Same-day entries extend nothing.
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	streak.TotalEntries++
	streak.LastEntryDate = now

	return s.db.Save(streak).Error
}

// CalendarDates returns the distinct days with at least one entry within
// the last `days` days, ascending, as "2006-01-02" strings.
func (s *Service) CalendarDates(userID uuid.UUID, days int) ([]string, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	var entries []Entry
	err := s.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Select("created_at").
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		d := e.CreatedAt.UTC().Format("2006-01-02")
		if len(dates) == 0 || dates[len(dates)-1] != d {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// snapshot loads the user's full history in the shape the engine consumes.
func (s *Service) snapshot(userID uuid.UUID) ([]analytics.Entry, error) {
	var entries []Entry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	return toAnalytics(entries), nil
}

// Statistics computes the aggregate summary over the user's full history.
// `now` fixes the engine's reference time and timezone.
func (s *Service) Statistics(userID uuid.UUID, now time.Time) (analytics.Statistics, error) {
	snap, err := s.snapshot(userID)
	if err != nil {
		return analytics.Statistics{}, err
	}
	return analytics.Calculate(snap, now), nil
}

// Trends builds the per-day series for the requested window.
func (s *Service) Trends(userID uuid.UUID, days int, now time.Time) ([]analytics.Trend, error) {
	snap, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	return analytics.Trends(snap, days, now), nil
}

// Insights derives the message list from statistics and trends over the
// requested window.
func (s *Service) Insights(userID uuid.UUID, days int, now time.Time) ([]string, error) {
	snap, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	stats := analytics.Calculate(snap, now)
	trends := analytics.Trends(snap, days, now)
	return analytics.Insights(stats, trends), nil
}
