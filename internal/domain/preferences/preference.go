package preferences

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Preference is the single settings row per user
type Preference struct {
	shared.UserAggregateRoot
	Currency               string `gorm:"type:varchar(3);not null;default:'USD'"`
	Timezone               string `gorm:"type:varchar(64);not null;default:'UTC'"`
	WeekStartsOn           int    `gorm:"not null;default:1"` // 0=Sunday, 1=Monday
	DailyBriefingHour      int    `gorm:"not null;default:8"` // local hour 0..23
	NotificationsEnabled   bool   `gorm:"not null;default:true"`
	BudgetAlertsEnabled    bool   `gorm:"not null;default:true"`
	HealthRemindersEnabled bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}

// NewPreference creates default preferences for a user
func NewPreference(userID uuid.UUID) *Preference {
	return &Preference{
		UserAggregateRoot:      shared.NewUserAggregateRoot(userID),
		Currency:               "USD",
		Timezone:               "UTC",
		WeekStartsOn:           1,
		DailyBriefingHour:      8,
		NotificationsEnabled:   true,
		BudgetAlertsEnabled:    true,
		HealthRemindersEnabled: true,
	}
}

// Update replaces all settings after validation
func (p *Preference) Update(currency, timezone string, weekStartsOn, briefingHour int, notifications, budgetAlerts, healthReminders bool) error {
	if len(currency) != 3 {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter ISO code")
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return shared.NewDomainError("INVALID_TIMEZONE", "Unknown timezone")
	}
	if weekStartsOn != 0 && weekStartsOn != 1 {
		return shared.NewDomainError("INVALID_VALUE", "Week must start on Sunday (0) or Monday (1)")
	}
	if briefingHour < 0 || briefingHour > 23 {
		return shared.NewDomainError("INVALID_VALUE", "Briefing hour must be between 0 and 23")
	}
	p.Currency = currency
	p.Timezone = timezone
	p.WeekStartsOn = weekStartsOn
	p.DailyBriefingHour = briefingHour
	p.NotificationsEnabled = notifications
	p.BudgetAlertsEnabled = budgetAlerts
	p.HealthRemindersEnabled = healthReminders
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// PreferenceRepository defines the interface for preference persistence
type PreferenceRepository interface {
	// FindByUser finds the settings row for a user
	FindByUser(ctx context.Context, userID uuid.UUID) (*Preference, error)

	// Save creates or updates the settings row
	Save(ctx context.Context, pref *Preference) error

	// FindAllWithNotifications lists settings rows for users that have
	// notifications enabled. Used by the notification scheduler.
	FindAllWithNotifications(ctx context.Context) ([]*Preference, error)
}
