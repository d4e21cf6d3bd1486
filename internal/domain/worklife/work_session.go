package worklife

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// WorkSession is one continuous block of work
type WorkSession struct {
	shared.UserAggregateRoot
	StartedAt      time.Time `gorm:"not null;index"`
	EndedAt        time.Time `gorm:"not null"`
	MeetingMinutes int       `gorm:"not null;default:0"`
	Stress         int       `gorm:"not null;default:0"` // 1..10, 0 = not rated
	EnergyAfter    int       `gorm:"not null;default:0"` // 1..10, 0 = not rated
	Note           string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (WorkSession) TableName() string {
	return "work_sessions"
}

// NewWorkSession creates a validated work session
func NewWorkSession(userID uuid.UUID, startedAt, endedAt time.Time, meetingMinutes, stress, energyAfter int, note string) (*WorkSession, error) {
	if startedAt.IsZero() || endedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_TIME", "Start and end times are required")
	}
	if !endedAt.After(startedAt) {
		return nil, shared.NewDomainError("INVALID_TIME", "End time must be after start time")
	}
	if endedAt.Sub(startedAt) > 24*time.Hour {
		return nil, shared.NewDomainError("INVALID_TIME", "A session cannot exceed 24 hours")
	}
	if meetingMinutes < 0 || float64(meetingMinutes) > endedAt.Sub(startedAt).Minutes() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Meeting minutes cannot exceed session length")
	}
	if stress < 0 || stress > 10 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Stress must be between 1 and 10")
	}
	if energyAfter < 0 || energyAfter > 10 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Energy must be between 1 and 10")
	}

	return &WorkSession{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		MeetingMinutes:    meetingMinutes,
		Stress:            stress,
		EnergyAfter:       energyAfter,
		Note:              note,
	}, nil
}

// Update replaces the mutable fields of a work session
func (w *WorkSession) Update(startedAt, endedAt time.Time, meetingMinutes, stress, energyAfter int, note string) error {
	if !endedAt.After(startedAt) {
		return shared.NewDomainError("INVALID_TIME", "End time must be after start time")
	}
	if endedAt.Sub(startedAt) > 24*time.Hour {
		return shared.NewDomainError("INVALID_TIME", "A session cannot exceed 24 hours")
	}
	if meetingMinutes < 0 || float64(meetingMinutes) > endedAt.Sub(startedAt).Minutes() {
		return shared.NewDomainError("INVALID_VALUE", "Meeting minutes cannot exceed session length")
	}
	if stress < 0 || stress > 10 {
		return shared.NewDomainError("INVALID_VALUE", "Stress must be between 1 and 10")
	}
	if energyAfter < 0 || energyAfter > 10 {
		return shared.NewDomainError("INVALID_VALUE", "Energy must be between 1 and 10")
	}
	w.StartedAt = startedAt
	w.EndedAt = endedAt
	w.MeetingMinutes = meetingMinutes
	w.Stress = stress
	w.EnergyAfter = energyAfter
	w.Note = note
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// Hours is the session length in hours
func (w *WorkSession) Hours() float64 {
	return w.EndedAt.Sub(w.StartedAt).Hours()
}

// MeetingHours is meeting time in hours
func (w *WorkSession) MeetingHours() float64 {
	return float64(w.MeetingMinutes) / 60
}

// IsOvertime reports sessions longer than 9 hours
func (w *WorkSession) IsOvertime() bool {
	return w.Hours() > 9
}

// IsHighStress reports a stress rating of 7 or above
func (w *WorkSession) IsHighStress() bool {
	return w.Stress >= 7
}

// IsEveningStart reports sessions starting at 20:00 or later
func (w *WorkSession) IsEveningStart() bool {
	return w.StartedAt.Hour() >= 20
}

// IsEarlyMorningStart reports sessions starting before 06:00
func (w *WorkSession) IsEarlyMorningStart() bool {
	return w.StartedAt.Hour() < 6
}

// IsWeekend reports sessions starting on Saturday or Sunday
func (w *WorkSession) IsWeekend() bool {
	wd := w.StartedAt.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBoundaryViolation reports work that crosses personal-time boundaries:
// an evening start, an early-morning start, or a weekend session.
func (w *WorkSession) IsBoundaryViolation() bool {
	return w.IsEveningStart() || w.IsEarlyMorningStart() || w.IsWeekend()
}
