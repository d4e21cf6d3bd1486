package health

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// defaultSleepEfficiency is assumed when no awake-time data was recorded
const defaultSleepEfficiency = 85.0

// SleepRecord is one night of sleep
type SleepRecord struct {
	shared.UserAggregateRoot
	Bedtime      time.Time `gorm:"not null;index"`
	WakeTime     time.Time `gorm:"not null"`
	AwakeMinutes int       `gorm:"not null;default:0"`
	Quality      int       `gorm:"not null;default:0"` // 1..10, 0 = not rated
}

// TableName returns the table name for GORM
func (SleepRecord) TableName() string {
	return "sleep_records"
}

// NewSleepRecord creates a validated sleep entry
func NewSleepRecord(userID uuid.UUID, bedtime, wakeTime time.Time, awakeMinutes, quality int) (*SleepRecord, error) {
	if bedtime.IsZero() || wakeTime.IsZero() {
		return nil, shared.NewDomainError("INVALID_TIME", "Bedtime and wake time are required")
	}
	if !wakeTime.After(bedtime) {
		return nil, shared.NewDomainError("INVALID_TIME", "Wake time must be after bedtime")
	}
	if wakeTime.Sub(bedtime) > 24*time.Hour {
		return nil, shared.NewDomainError("INVALID_TIME", "Sleep duration cannot exceed 24 hours")
	}
	if awakeMinutes < 0 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Awake minutes cannot be negative")
	}
	if quality < 0 || quality > 10 {
		return nil, shared.NewDomainError("INVALID_VALUE", "Quality must be between 1 and 10")
	}

	return &SleepRecord{
		UserAggregateRoot: shared.NewUserAggregateRoot(userID),
		Bedtime:           bedtime,
		WakeTime:          wakeTime,
		AwakeMinutes:      awakeMinutes,
		Quality:           quality,
	}, nil
}

// Update replaces the mutable fields of a sleep record
func (s *SleepRecord) Update(bedtime, wakeTime time.Time, awakeMinutes, quality int) error {
	if !wakeTime.After(bedtime) {
		return shared.NewDomainError("INVALID_TIME", "Wake time must be after bedtime")
	}
	if wakeTime.Sub(bedtime) > 24*time.Hour {
		return shared.NewDomainError("INVALID_TIME", "Sleep duration cannot exceed 24 hours")
	}
	if awakeMinutes < 0 {
		return shared.NewDomainError("INVALID_VALUE", "Awake minutes cannot be negative")
	}
	if quality < 0 || quality > 10 {
		return shared.NewDomainError("INVALID_VALUE", "Quality must be between 1 and 10")
	}
	s.Bedtime = bedtime
	s.WakeTime = wakeTime
	s.AwakeMinutes = awakeMinutes
	s.Quality = quality
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// TotalMinutes is time in bed from bedtime to wake time
func (s *SleepRecord) TotalMinutes() int {
	return int(s.WakeTime.Sub(s.Bedtime).Minutes())
}

// DurationHours is time in bed expressed in hours
func (s *SleepRecord) DurationHours() float64 {
	return s.WakeTime.Sub(s.Bedtime).Hours()
}

// Efficiency returns (total - awake) / total as a percentage. When no awake
// time was recorded the conventional default of 85 is returned.
func (s *SleepRecord) Efficiency() float64 {
	total := s.TotalMinutes()
	if total <= 0 {
		return 0
	}
	if s.AwakeMinutes == 0 {
		return defaultSleepEfficiency
	}
	asleep := total - s.AwakeMinutes
	if asleep < 0 {
		asleep = 0
	}
	return float64(asleep) / float64(total) * 100
}
