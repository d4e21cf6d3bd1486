package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/identity"
	"github.com/wellbeing/backend/internal/infrastructure/auth"
)

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=100"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	DisplayName   *string  `json:"display_name" binding:"omitempty,min=1,max=100"`
	Age           *int     `json:"age" binding:"omitempty,min=1,max=120"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	HeightCm      *float64 `json:"height_cm" binding:"omitempty,gt=0,lt=300"`
	WeightKg      *float64 `json:"weight_kg" binding:"omitempty,gt=0,lt=500"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
	Goal          *string  `json:"goal" binding:"omitempty,oneof=lose maintain gain"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=100"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	Age           int        `json:"age,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	HeightCm      float64    `json:"height_cm,omitempty"`
	WeightKg      float64    `json:"weight_kg,omitempty"`
	ActivityLevel string     `json:"activity_level"`
	Goal          string     `json:"goal"`
	BMI           float64    `json:"bmi,omitempty"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	resp := UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Age:           u.Age,
		Gender:        string(u.Gender),
		HeightCm:      u.HeightCm,
		WeightKg:      u.WeightKg,
		ActivityLevel: string(u.ActivityLevel),
		Goal:          string(u.Goal),
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
	}
	if u.HasBodyMetrics() {
		resp.BMI = u.BMI()
	}
	return resp
}
