package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userapp "github.com/platewise/platewise/internal/application/user"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/infrastructure/security"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
	"github.com/platewise/platewise/test/testutils"
)

// UserServiceTestSuite provides a test suite for accounts and profiles
type UserServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	users   *testutils.MemoryUserRepository
	tokens  *security.TokenService
	service inbound.UserService
}

// SetupTest wires a fresh repository for every test
func (s *UserServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = testutils.NewMemoryUserRepository()

	cfg := &config.Config{}
	cfg.App.Name = "platewise-test"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiration = time.Hour
	s.tokens = security.NewTokenService(cfg)

	s.service = userapp.NewUserService(s.users, s.tokens, bcrypt.MinCost, zap.NewNop())
}

func (s *UserServiceTestSuite) register(email string) *inbound.AuthResultDTO {
	result, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		Email:    email,
		Password: "correct-horse-battery",
		FullName: "Taylor Tester",
	})
	require.NoError(s.T(), err)
	return result
}

// TestRegister tests account creation
func (s *UserServiceTestSuite) TestRegister() {
	s.Run("NewEmail_ShouldCreateAccountWithDefaultGoals", func() {
		result := s.register("taylor@example.com")

		assert.NotEmpty(s.T(), result.Token)
		assert.Equal(s.T(), "taylor@example.com", result.Profile.Email)
		assert.Equal(s.T(), "user", result.Profile.Role)
		assert.InDelta(s.T(), 2000, result.Profile.Goals.Calories, 1e-9)
		assert.InDelta(s.T(), 150, result.Profile.Goals.Protein, 1e-9)
	})

	s.Run("IssuedToken_ShouldParseBackToUser", func() {
		result := s.register("parse@example.com")

		claims, err := s.tokens.Parse(result.Token)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), result.Profile.ID, claims.UserID)
		assert.Equal(s.T(), "user", claims.Role)
	})

	s.Run("DuplicateEmail_ShouldReturnConflict", func() {
		s.register("dup@example.com")

		_, err := s.service.Register(s.ctx, inbound.RegisterCommand{
			Email:    "dup@example.com",
			Password: "another-password",
		})
		assert.Equal(s.T(), errors.CodeEmailAlreadyExists, errors.GetCode(err))
	})

	s.Run("PasswordHash_ShouldNeverStorePlaintext", func() {
		result := s.register("hashed@example.com")

		stored, err := s.users.FindByID(s.ctx, result.Profile.ID)
		require.NoError(s.T(), err)
		assert.NotEqual(s.T(), "correct-horse-battery", stored.PasswordHash)
		assert.NoError(s.T(), bcrypt.CompareHashAndPassword(
			[]byte(stored.PasswordHash), []byte("correct-horse-battery")))
	})
}

// TestLogin tests credential verification
func (s *UserServiceTestSuite) TestLogin() {
	s.Run("ValidCredentials_ShouldIssueToken", func() {
		s.register("login@example.com")

		result, err := s.service.Login(s.ctx, inbound.LoginCommand{
			Email:    "login@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(s.T(), err)
		assert.NotEmpty(s.T(), result.Token)
	})

	s.Run("WrongPassword_ShouldReturnInvalidCredentials", func() {
		s.register("wrongpw@example.com")

		_, err := s.service.Login(s.ctx, inbound.LoginCommand{
			Email:    "wrongpw@example.com",
			Password: "not-the-password",
		})
		assert.Equal(s.T(), errors.CodeInvalidCredentials, errors.GetCode(err))
	})

	s.Run("UnknownEmail_ShouldReturnSameError", func() {
		_, err := s.service.Login(s.ctx, inbound.LoginCommand{
			Email:    "nobody@example.com",
			Password: "whatever-password",
		})
		assert.Equal(s.T(), errors.CodeInvalidCredentials, errors.GetCode(err),
			"unknown email should be indistinguishable from a wrong password")
	})
}

// TestUpdateGoals tests changing nutrition targets
func (s *UserServiceTestSuite) TestUpdateGoals() {
	s.Run("PartialUpdate_ShouldKeepOtherTargets", func() {
		result := s.register("goals@example.com")
		protein := 180.0

		profile, err := s.service.UpdateGoals(s.ctx, inbound.UpdateGoalsCommand{
			UserID:  result.Profile.ID,
			Protein: &protein,
		})
		require.NoError(s.T(), err)
		assert.InDelta(s.T(), 180, profile.Goals.Protein, 1e-9)
		assert.InDelta(s.T(), 2000, profile.Goals.Calories, 1e-9)
	})

	s.Run("NegativeTarget_ShouldReturnValidationError", func() {
		result := s.register("badgoals@example.com")
		calories := -100.0

		_, err := s.service.UpdateGoals(s.ctx, inbound.UpdateGoalsCommand{
			UserID:   result.Profile.ID,
			Calories: &calories,
		})
		assert.Equal(s.T(), errors.CodeValidationFailed, errors.GetCode(err))
	})

	s.Run("UnknownUser_ShouldReturnNotFound", func() {
		calories := 1800.0
		_, err := s.service.UpdateGoals(s.ctx, inbound.UpdateGoalsCommand{
			UserID:   uuid.New(),
			Calories: &calories,
		})
		assert.Equal(s.T(), errors.CodeUserNotFound, errors.GetCode(err))
	})
}

// TestUpdatePreferences tests dietary preferences and allergies
func (s *UserServiceTestSuite) TestUpdatePreferences() {
	s.Run("Update_ShouldReplaceProvidedFieldsOnly", func() {
		result := s.register("prefs@example.com")
		allergies := []string{"peanuts", "shellfish"}

		profile, err := s.service.UpdatePreferences(s.ctx, inbound.UpdatePreferencesCommand{
			UserID:    result.Profile.ID,
			Allergies: &allergies,
		})
		require.NoError(s.T(), err)
		assert.Equal(s.T(), allergies, profile.Allergies)
		assert.Equal(s.T(), "Taylor Tester", profile.FullName)
	})
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
