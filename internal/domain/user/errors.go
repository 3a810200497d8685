package user

import "errors"

// Domain errors for user operations

var (
	ErrInvalidEmail         = errors.New("email address is invalid")
	ErrPasswordHashRequired = errors.New("password hash is required")
	ErrInvalidGoals         = errors.New("nutrition goals must be finite and non-negative")
)
