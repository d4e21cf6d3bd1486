package productivity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// FocusDay is one day's productivity record. One row per (user, day).
type FocusDay struct {
	shared.UserAggregateRoot
	Day             time.Time `gorm:"type:date;not null;uniqueIndex:idx_focus_user_day,priority:2"`
	TasksPlanned    int       `gorm:"not null;default:0"`
	TasksCompleted  int       `gorm:"not null;default:0"`
	FocusScore      float64   `gorm:"not null;default:0"` // 0..10 self-rating
	ContextSwitches int       `gorm:"not null;default:0"`
	DeepWorkMinutes int       `gorm:"not null;default:0"`
	Note            string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (FocusDay) TableName() string {
	return "focus_days"
}

// NewFocusDay creates a validated productivity record for one day
func NewFocusDay(userID uuid.UUID, day time.Time, planned, completed int, focusScore float64, switches, deepWorkMinutes int, note string) (*FocusDay, error) {
	if day.IsZero() {
		day = time.Now()
	}
	day = day.Truncate(24 * time.Hour)
	if planned < 0 || completed < 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Task counts cannot be negative")
	}
	if completed > planned && planned > 0 {
		completed = planned
	}
	if focusScore < 0 || focusScore > 10 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Focus score must be between 0 and 10")
	}
	if switches < 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Context switches cannot be negative")
	}
	if deepWorkMinutes < 0 || deepWorkMinutes > 24*60 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Deep work minutes must be within one day")
	}

	return &FocusDay{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Day:               day,
		TasksPlanned:      planned,
		TasksCompleted:    completed,
		FocusScore:        focusScore,
		ContextSwitches:   switches,
		DeepWorkMinutes:   deepWorkMinutes,
		Note:              note,
	}, nil
}

// Update replaces the mutable fields of a focus day
func (f *FocusDay) Update(planned, completed int, focusScore float64, switches, deepWorkMinutes int, note string) error {
	if planned < 0 || completed < 0 {
		return shared.NewDomainError("INVALID_VALUE", "Task counts cannot be negative")
	}
	if focusScore < 0 || focusScore > 10 {
		return shared.NewDomainError("INVALID_VALUE", "Focus score must be between 0 and 10")
	}
	if switches < 0 {
		return shared.NewDomainError("INVALID_VALUE", "Context switches cannot be negative")
	}
	if deepWorkMinutes < 0 || deepWorkMinutes > 24*60 {
		return shared.NewDomainError("INVALID_VALUE", "Deep work minutes must be within one day")
	}
	f.TasksPlanned = planned
	f.TasksCompleted = completed
	f.FocusScore = focusScore
	f.ContextSwitches = switches
	f.DeepWorkMinutes = deepWorkMinutes
	f.Note = note
	f.UpdatedAt = time.Now()
	f.IncrementVersion()
	return nil
}

// CompletionRate returns tasks completed over planned as a percentage
func (f *FocusDay) CompletionRate() float64 {
	if f.TasksPlanned == 0 {
		return 0
	}
	return float64(f.TasksCompleted) / float64(f.TasksPlanned) * 100
}

// DeepWorkHours is deep work time in hours
func (f *FocusDay) DeepWorkHours() float64 {
	return float64(f.DeepWorkMinutes) / 60
}

// FocusDayRepository defines the interface for focus day persistence
type FocusDayRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*FocusDay, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]FocusDay, error)

	// FindInRange finds records with day in [from, to)
	FindInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]FocusDay, error)

	// FindByDay finds the single record for one calendar day
	FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*FocusDay, error)

	Save(ctx context.Context, day *FocusDay) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
