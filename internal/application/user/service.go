// Package user provides the application layer for accounts and
// nutrition profiles
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/platewise/platewise/internal/domain/user"
	"github.com/platewise/platewise/internal/infrastructure/security"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
)

// UserService implements the account and profile use cases
type UserService struct {
	userRepo   outbound.UserRepository
	tokens     *security.TokenService
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo outbound.UserRepository,
	tokens *security.TokenService,
	bcryptCost int,
	logger *zap.Logger,
) inbound.UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger.Named("user-service"),
	}
}

// Register creates an account with default nutrition goals and signs
// the user in
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResultDTO, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	entity, err := user.New(cmd.Email, string(hash), cmd.FullName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", entity.ID.String()))
	return s.authResult(entity)
}

// Login verifies credentials and issues a token. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.AuthResultDTO, error) {
	entity, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	return s.authResult(entity)
}

// GetProfile returns the user's profile and goals
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.ProfileDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := toProfileDTO(entity)
	return &dto, nil
}

// UpdateGoals changes the user's daily nutrition targets
func (s *UserService) UpdateGoals(ctx context.Context, cmd inbound.UpdateGoalsCommand) (*inbound.ProfileDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Calories != nil {
		entity.Goals.Calories = *cmd.Calories
	}
	if cmd.Protein != nil {
		entity.Goals.Protein = *cmd.Protein
	}
	if cmd.Carbs != nil {
		entity.Goals.Carbs = *cmd.Carbs
	}
	if cmd.Fat != nil {
		entity.Goals.Fat = *cmd.Fat
	}
	if cmd.Fiber != nil {
		entity.Goals.Fiber = *cmd.Fiber
	}

	if err := entity.Goals.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	entity.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	dto := toProfileDTO(entity)
	return &dto, nil
}

// UpdatePreferences changes the user's dietary preferences and allergies
func (s *UserService) UpdatePreferences(ctx context.Context, cmd inbound.UpdatePreferencesCommand) (*inbound.ProfileDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.FullName != nil {
		entity.FullName = *cmd.FullName
	}
	if cmd.DietaryPreferences != nil {
		entity.DietaryPreferences = *cmd.DietaryPreferences
	}
	if cmd.Allergies != nil {
		entity.Allergies = *cmd.Allergies
	}
	entity.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	dto := toProfileDTO(entity)
	return &dto, nil
}

func (s *UserService) authResult(entity *user.User) (*inbound.AuthResultDTO, error) {
	token, expiresAt, err := s.tokens.Issue(entity.ID, string(entity.Role))
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	return &inbound.AuthResultDTO{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Profile:   toProfileDTO(entity),
	}, nil
}

func toProfileDTO(u *user.User) inbound.ProfileDTO {
	return inbound.ProfileDTO{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		Goals: inbound.NutritionDTO{
			Calories: u.Goals.Calories,
			Protein:  u.Goals.Protein,
			Carbs:    u.Goals.Carbs,
			Fat:      u.Goals.Fat,
			Fiber:    u.Goals.Fiber,
		},
		DietaryPreferences: u.DietaryPreferences,
		Allergies:          u.Allergies,
		CreatedAt:          u.CreatedAt.Format(time.RFC3339),
	}
}
