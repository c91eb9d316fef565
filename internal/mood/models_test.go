package mood

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateEntryRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateEntryRequest
		wantErr error
	}{
		{"valid text", CreateEntryRequest{MoodScore: 7, EntryType: "text"}, nil},
		{"valid voice", CreateEntryRequest{MoodScore: 3, EntryType: "voice"}, nil},
		{"defaults to text", CreateEntryRequest{MoodScore: 5}, nil},
		{"score too low", CreateEntryRequest{MoodScore: 0, EntryType: "text"}, ErrInvalidScore},
		{"score too high", CreateEntryRequest{MoodScore: 11, EntryType: "text"}, ErrInvalidScore},
		{"unknown type", CreateEntryRequest{MoodScore: 5, EntryType: "video"}, ErrInvalidEntryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDefaultsEntryType(t *testing.T) {
	req := CreateEntryRequest{MoodScore: 5}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.EntryType != "text" {
		t.Errorf("expected entry type to default to text, got %q", req.EntryType)
	}
}

func TestToAnalytics(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	at := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	entries := []Entry{{
		ID:          id,
		UserID:      userID,
		Score:       8,
		EntryType:   "image",
		TextContent: "sunny walk",
		CreatedAt:   at,
	}}

	snap := toAnalytics(entries)
	if len(snap) != 1 {
		t.Fatalf("expected one entry, got %d", len(snap))
	}
	got := snap[0]
	if got.ID != id.String() || got.UserID != userID.String() {
		t.Errorf("identifier mismatch: %+v", got)
	}
	if got.Score != 8 || got.EntryType != "image" || got.Note != "sunny walk" {
		t.Errorf("field mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("timestamp mismatch: %v", got.CreatedAt)
	}
}
