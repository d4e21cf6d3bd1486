package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/preferences"
	"github.com/wellbeing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPreferenceRepository implements preferences.PreferenceRepository using GORM
type GormPreferenceRepository struct {
	db *gorm.DB
}

// NewGormPreferenceRepository creates a new GormPreferenceRepository
func NewGormPreferenceRepository(db *gorm.DB) *GormPreferenceRepository {
	return &GormPreferenceRepository{db: db}
}

// FindByUser finds the settings row for a user
func (r *GormPreferenceRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*preferences.Preference, error) {
	var pref preferences.Preference
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pref, nil
}

// Save creates or updates the settings row
func (r *GormPreferenceRepository) Save(ctx context.Context, pref *preferences.Preference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

// FindAllWithNotifications lists settings rows with notifications enabled
func (r *GormPreferenceRepository) FindAllWithNotifications(ctx context.Context) ([]*preferences.Preference, error) {
	var prefs []*preferences.Preference
	if err := r.db.WithContext(ctx).
		Where("notifications_enabled = ?", true).
		Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
