package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/wellbeing/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Gender is the user's stated gender, used by metabolic calculations
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel describes habitual physical activity for TDEE estimation
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// WeightGoal is the user's current weight management goal
type WeightGoal string

const (
	WeightGoalLose     WeightGoal = "lose"
	WeightGoalMaintain WeightGoal = "maintain"
	WeightGoalGain     WeightGoal = "gain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is the account aggregate. The service is effectively single-user but
// every record is still keyed by user ID so data stays isolated per account.
type User struct {
	shared.BaseAggregateRoot
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	DisplayName  string `gorm:"type:varchar(100);not null"`

	// Profile fields consumed by health calculations. Optional until the
	// user fills them in; calculations that need them return
	// ErrProfileIncomplete when absent.
	Age           int           `gorm:"not null;default:0"`
	Gender        Gender        `gorm:"type:varchar(10);default:''"`
	HeightCm      float64       `gorm:"not null;default:0"`
	WeightKg      float64       `gorm:"not null;default:0"`
	ActivityLevel ActivityLevel `gorm:"type:varchar(20);default:'sedentary'"`
	Goal          WeightGoal    `gorm:"type:varchar(10);default:'maintain'"`

	LastLoginAt *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user account with a bcrypt-hashed password
func NewUser(email, password, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	if len(displayName) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Display name cannot exceed 100 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      string(hash),
		DisplayName:       displayName,
		ActivityLevel:     ActivitySedentary,
		Goal:              WeightGoalMaintain,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after validating the new password
func (u *User) ChangePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// UpdateProfile sets the body and activity fields used by calculations
func (u *User) UpdateProfile(age int, gender Gender, heightCm, weightKg float64, level ActivityLevel, goal WeightGoal) error {
	if age < 0 || age > 130 {
		return shared.NewDomainError("INVALID_AGE", "Age must be between 0 and 130")
	}
	if heightCm < 0 || heightCm > 300 {
		return shared.NewDomainError("INVALID_HEIGHT", "Height must be between 0 and 300 cm")
	}
	if weightKg < 0 || weightKg > 700 {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight must be between 0 and 700 kg")
	}
	if gender != "" && gender != GenderMale && gender != GenderFemale && gender != GenderOther {
		return shared.NewDomainError("INVALID_GENDER", "Gender must be male, female or other")
	}
	if err := validateActivityLevel(level); err != nil {
		return err
	}
	if goal != WeightGoalLose && goal != WeightGoalMaintain && goal != WeightGoalGain {
		return shared.NewDomainError("INVALID_GOAL", "Goal must be lose, maintain or gain")
	}

	u.Age = age
	u.Gender = gender
	u.HeightCm = heightCm
	u.WeightKg = weightKg
	u.ActivityLevel = level
	u.Goal = goal
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Rename updates the display name
func (u *User) Rename(displayName string) error {
	if displayName == "" {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if len(displayName) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot exceed 100 characters")
	}
	u.DisplayName = displayName
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// HasBodyMetrics reports whether height and weight are available
func (u *User) HasBodyMetrics() bool {
	return u.HeightCm > 0 && u.WeightKg > 0
}

// CanComputeBMR reports whether Mifflin-St Jeor inputs are all present
func (u *User) CanComputeBMR() bool {
	return u.HasBodyMetrics() && u.Age > 0 && (u.Gender == GenderMale || u.Gender == GenderFemale)
}

// BMI returns body mass index, or 0 when body metrics are missing
func (u *User) BMI() float64 {
	if !u.HasBodyMetrics() {
		return 0
	}
	heightM := u.HeightCm / 100
	return u.WeightKg / (heightM * heightM)
}

func validateActivityLevel(level ActivityLevel) error {
	switch level {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtraActive:
		return nil
	}
	return shared.NewDomainError("INVALID_ACTIVITY_LEVEL", "Unknown activity level")
}
