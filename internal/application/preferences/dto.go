package preferences

import (
	"github.com/wellbeing/backend/internal/domain/preferences"
)

// UpdatePreferencesRequest represents the full settings payload. PUT replaces
// the whole row, so every field is required.
type UpdatePreferencesRequest struct {
	Currency               string `json:"currency" binding:"required,len=3"`
	Timezone               string `json:"timezone" binding:"required"`
	WeekStartsOn           *int   `json:"week_starts_on" binding:"required,oneof=0 1"`
	DailyBriefingHour      *int   `json:"daily_briefing_hour" binding:"required,gte=0,lte=23"`
	NotificationsEnabled   *bool  `json:"notifications_enabled" binding:"required"`
	BudgetAlertsEnabled    *bool  `json:"budget_alerts_enabled" binding:"required"`
	HealthRemindersEnabled *bool  `json:"health_reminders_enabled" binding:"required"`
}

// PreferencesResponse represents the settings row in API responses
type PreferencesResponse struct {
	Currency               string `json:"currency"`
	Timezone               string `json:"timezone"`
	WeekStartsOn           int    `json:"week_starts_on"`
	DailyBriefingHour      int    `json:"daily_briefing_hour"`
	NotificationsEnabled   bool   `json:"notifications_enabled"`
	BudgetAlertsEnabled    bool   `json:"budget_alerts_enabled"`
	HealthRemindersEnabled bool   `json:"health_reminders_enabled"`
}

// ToPreferencesResponse converts a preference aggregate to a response DTO
func ToPreferencesResponse(pref *preferences.Preference) *PreferencesResponse {
	return &PreferencesResponse{
		Currency:               pref.Currency,
		Timezone:               pref.Timezone,
		WeekStartsOn:           pref.WeekStartsOn,
		DailyBriefingHour:      pref.DailyBriefingHour,
		NotificationsEnabled:   pref.NotificationsEnabled,
		BudgetAlertsEnabled:    pref.BudgetAlertsEnabled,
		HealthRemindersEnabled: pref.HealthRemindersEnabled,
	}
}
