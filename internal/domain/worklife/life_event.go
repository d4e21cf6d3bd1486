package worklife

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// LifeEventType classifies non-work time
type LifeEventType string

const (
	LifeEventSocial   LifeEventType = "social"
	LifeEventFamily   LifeEventType = "family"
	LifeEventExercise LifeEventType = "exercise"
	LifeEventHobby    LifeEventType = "hobby"
	LifeEventRest     LifeEventType = "rest"
)

// LifeEvent is one block of personal time with its perceived energy effect
type LifeEvent struct {
	shared.UserAggregateRoot
	EventType       LifeEventType `gorm:"type:varchar(10);not null;index"`
	Title           string        `gorm:"type:varchar(200)"`
	DurationMinutes int           `gorm:"not null"`
	EnergyImpact    int           `gorm:"not null;default:0"` // -5..5
	OccurredAt      time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (LifeEvent) TableName() string {
	return "life_events"
}

// NewLifeEvent creates a validated life event
func NewLifeEvent(userID uuid.UUID, eventType LifeEventType, title string, durationMinutes, energyImpact int, occurredAt time.Time) (*LifeEvent, error) {
	if err := validateLifeEventType(eventType); err != nil {
		return nil, err
	}
	if durationMinutes <= 0 || durationMinutes > 24*60 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be between 1 minute and 24 hours")
	}
	if energyImpact < -5 || energyImpact > 5 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Energy impact must be between -5 and 5")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &LifeEvent{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		EventType:         eventType,
		Title:             title,
		DurationMinutes:   durationMinutes,
		EnergyImpact:      energyImpact,
		OccurredAt:        occurredAt,
	}, nil
}

// Update replaces the mutable fields of a life event
func (e *LifeEvent) Update(eventType LifeEventType, title string, durationMinutes, energyImpact int, occurredAt time.Time) error {
	if err := validateLifeEventType(eventType); err != nil {
		return err
	}
	if durationMinutes <= 0 || durationMinutes > 24*60 {
		return shared.NewDomainError("INVALID_DURATION", "Duration must be between 1 minute and 24 hours")
	}
	if energyImpact < -5 || energyImpact > 5 {
		return shared.NewDomainError("INVALID_VALUE", "Energy impact must be between -5 and 5")
	}
	e.EventType = eventType
	e.Title = title
	e.DurationMinutes = durationMinutes
	e.EnergyImpact = energyImpact
	if !occurredAt.IsZero() {
		e.OccurredAt = occurredAt
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Hours is the event length in hours
func (e *LifeEvent) Hours() float64 {
	return float64(e.DurationMinutes) / 60
}

func validateLifeEventType(t LifeEventType) error {
	switch t {
	case LifeEventSocial, LifeEventFamily, LifeEventExercise, LifeEventHobby, LifeEventRest:
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Unknown life event type")
}
