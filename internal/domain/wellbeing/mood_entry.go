package wellbeing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// MoodEntry is one self-reported mood check-in. Mood, energy and stress are
// 1..10 self-ratings.
type MoodEntry struct {
	shared.UserAggregateRoot
	MoodScore   int       `gorm:"not null"`
	EnergyLevel int       `gorm:"not null"`
	StressLevel int       `gorm:"not null"`
	Notes       string    `gorm:"type:varchar(1000)"`
	RecordedAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (MoodEntry) TableName() string {
	return "mood_entries"
}

// NewMoodEntry creates a validated mood check-in
func NewMoodEntry(userID uuid.UUID, moodScore, energyLevel, stressLevel int, notes string, recordedAt time.Time) (*MoodEntry, error) {
	for _, rating := range []int{moodScore, energyLevel, stressLevel} {
		if rating < 1 || rating > 10 {
			return nil, shared.NewDomainError("INVALID_VALUE", "Mood, energy and stress ratings must be between 1 and 10")
		}
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return &MoodEntry{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		MoodScore:         moodScore,
		EnergyLevel:       energyLevel,
		StressLevel:       stressLevel,
		Notes:             strings.TrimSpace(notes),
		RecordedAt:        recordedAt,
	}, nil
}

// MoodEntryRepository defines the interface for mood entry persistence
type MoodEntryRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*MoodEntry, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]MoodEntry, error)
	Save(ctx context.Context, entry *MoodEntry) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
