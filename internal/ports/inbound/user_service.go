package inbound

import (
	"context"

	"github.com/google/uuid"
)

// UserService defines the account and profile use cases
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResultDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*AuthResultDTO, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	UpdateGoals(ctx context.Context, cmd UpdateGoalsCommand) (*ProfileDTO, error)
	UpdatePreferences(ctx context.Context, cmd UpdatePreferencesCommand) (*ProfileDTO, error)
}

// RegisterCommand contains data for creating an account
type RegisterCommand struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

// LoginCommand contains credentials for authentication
type LoginCommand struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateGoalsCommand replaces the user's daily nutrition targets.
// Nil fields keep their current value.
type UpdateGoalsCommand struct {
	UserID   uuid.UUID
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

// UpdatePreferencesCommand replaces dietary preferences and allergies.
// Nil slices keep their current value.
type UpdatePreferencesCommand struct {
	UserID             uuid.UUID
	FullName           *string   `json:"full_name"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	Allergies          *[]string `json:"allergies"`
}

// ProfileDTO is the data transfer object for a user profile
type ProfileDTO struct {
	ID                 uuid.UUID    `json:"id"`
	Email              string       `json:"email"`
	FullName           string       `json:"full_name"`
	Role               string       `json:"role"`
	Goals              NutritionDTO `json:"goals"`
	DietaryPreferences []string     `json:"dietary_preferences"`
	Allergies          []string     `json:"allergies"`
	CreatedAt          string       `json:"created_at"`
}

// AuthResultDTO carries the issued token and profile after
// registration or login
type AuthResultDTO struct {
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expires_at"`
	Profile   ProfileDTO `json:"profile"`
}
