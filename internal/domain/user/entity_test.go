package user

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user gets default goals", func(t *testing.T) {
		u, err := New("Jamie@Example.com", "hash", " Jamie Doe ")

		require.NoError(t, err)
		assert.Equal(t, "jamie@example.com", u.Email)
		assert.Equal(t, "Jamie Doe", u.FullName)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, DefaultGoals(), u.Goals)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := New("not-an-email", "hash", "Jamie")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("missing password hash rejected", func(t *testing.T) {
		_, err := New("jamie@example.com", "", "Jamie")
		assert.ErrorIs(t, err, ErrPasswordHashRequired)
	})
}

func TestGoalsValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultGoals().Validate())
	})

	t.Run("negative target rejected", func(t *testing.T) {
		g := DefaultGoals()
		g.Protein = -10
		assert.ErrorIs(t, g.Validate(), ErrInvalidGoals)
	})

	t.Run("non-finite target rejected", func(t *testing.T) {
		g := DefaultGoals()
		g.Calories = math.NaN()
		assert.ErrorIs(t, g.Validate(), ErrInvalidGoals)
	})
}

func TestRolePermissions(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	moderator := &User{Role: RoleModerator}
	regular := &User{Role: RoleUser}

	assert.True(t, admin.CanManageSystemRecipes())
	assert.True(t, moderator.CanManageSystemRecipes())
	assert.False(t, regular.CanManageSystemRecipes())

	assert.True(t, admin.IsAdmin())
	assert.False(t, moderator.IsAdmin())
}
