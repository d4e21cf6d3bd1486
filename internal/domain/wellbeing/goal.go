package wellbeing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Goal is a personal wellbeing goal ("meditate daily", "pay off the card").
// Goals are free-form; progress is the user's own judgement.
type Goal struct {
	shared.UserAggregateRoot
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	TargetDate  *time.Time `gorm:"type:date"`
	Completed   bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (Goal) TableName() string {
	return "wellbeing_goals"
}

// NewGoal creates a validated goal
func NewGoal(userID uuid.UUID, title, description string, targetDate *time.Time) (*Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_VALUE", "Goal title is required")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Goal title must be at most 200 characters")
	}

	return &Goal{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Title:             title,
		Description:       strings.TrimSpace(description),
		TargetDate:        targetDate,
	}, nil
}

// Update replaces the goal's mutable fields
func (g *Goal) Update(title, description string, targetDate *time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_VALUE", "Goal title is required")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_VALUE", "Goal title must be at most 200 characters")
	}
	g.Title = title
	g.Description = strings.TrimSpace(description)
	g.TargetDate = targetDate
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// SetCompleted marks the goal completed or reopens it
func (g *Goal) SetCompleted(completed bool) {
	g.Completed = completed
	if completed {
		now := time.Now()
		g.CompletedAt = &now
	} else {
		g.CompletedAt = nil
	}
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// Overdue reports whether the goal has passed its target date unfinished
func (g *Goal) Overdue() bool {
	return !g.Completed && g.TargetDate != nil && g.TargetDate.Before(time.Now())
}

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Goal, error)
	Save(ctx context.Context, goal *Goal) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}
