// Package user contains the account and nutrition profile domain model.
package user

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role determines a user's permissions
type Role string

// User roles
const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Goals are a user's daily nutrition targets
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// DefaultGoals returns the targets assigned to new profiles
func DefaultGoals() Goals {
	return Goals{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fat:      65,
		Fiber:    30,
	}
}

// Validate checks that all goal values are finite and non-negative
func (g Goals) Validate() error {
	for _, v := range []float64{g.Calories, g.Protein, g.Carbs, g.Fat, g.Fiber} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidGoals
		}
	}
	return nil
}

// User is the account entity
type User struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	FullName           string
	Role               Role
	Goals              Goals
	DietaryPreferences []string
	Allergies          []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// New creates a user with default goals
func New(email, passwordHash, fullName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrPasswordHashRequired
	}

	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Role:         RoleUser,
		Goals:        DefaultGoals(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CanManageSystemRecipes reports whether the user may edit recipes
// that have no owner
func (u *User) CanManageSystemRecipes() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
