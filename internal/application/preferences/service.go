package preferences

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wellbeing/backend/internal/domain/preferences"
	"github.com/wellbeing/backend/internal/domain/shared"
)

// Service handles per-user settings
type Service struct {
	prefRepo preferences.PreferenceRepository
}

// NewService creates a new preferences service
func NewService(prefRepo preferences.PreferenceRepository) *Service {
	return &Service{prefRepo: prefRepo}
}

// Get returns the user's settings, falling back to defaults when no row has
// been saved yet. The defaults are not persisted until the first PUT.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*PreferencesResponse, error) {
	pref, err := s.prefRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ToPreferencesResponse(preferences.NewPreference(userID)), nil
		}
		return nil, err
	}
	return ToPreferencesResponse(pref), nil
}

// Update upserts the single settings row for the user
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req UpdatePreferencesRequest) (*PreferencesResponse, error) {
	pref, err := s.prefRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		pref = preferences.NewPreference(userID)
	}

	if err := pref.Update(
		req.Currency,
		req.Timezone,
		*req.WeekStartsOn,
		*req.DailyBriefingHour,
		*req.NotificationsEnabled,
		*req.BudgetAlertsEnabled,
		*req.HealthRemindersEnabled,
	); err != nil {
		return nil, err
	}

	if err := s.prefRepo.Save(ctx, pref); err != nil {
		return nil, err
	}
	return ToPreferencesResponse(pref), nil
}
