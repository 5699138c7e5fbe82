package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfreitas/receitas-api/internal/model"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestUser(t *testing.T, s *SQLite, email string) *model.User {
	t.Helper()
	u := &model.User{Name: "Ana", Email: email, PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestCreateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("assigns id and created_at", func(t *testing.T) {
		u := newTestUser(t, s, "ana@example.com")
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		u := &model.User{Name: "Outra Ana", Email: "ana@example.com", PasswordHash: "hash2"}
		assert.Error(t, s.CreateUser(ctx, u))
	})
}

func TestUserLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := newTestUser(t, s, "bruno@example.com")

	t.Run("by email", func(t *testing.T) {
		got, err := s.UserByEmail(ctx, "bruno@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("by id includes empty recipe list", func(t *testing.T) {
		got, err := s.UserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "bruno@example.com", got.Email)
		require.NotNil(t, got.Recipes)
		assert.Empty(t, got.Recipes)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.UserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.UserByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAddRecipe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := newTestUser(t, s, "carla@example.com")

	bolo := &model.Recipe{
		Title:       "Bolo",
		PrepTime:    "40min",
		Tools:       []string{"forma"},
		Ingredients: []string{"farinha", "ovo"},
		Steps:       []string{"misturar", "assar"},
	}
	require.NoError(t, s.AddRecipe(ctx, u.ID, bolo))
	assert.NotEmpty(t, bolo.ID)

	pao := &model.Recipe{
		Title:       "Pão",
		PrepTime:    "3h",
		Tools:       []string{"tigela", "forno"},
		Ingredients: []string{"farinha", "fermento", "água"},
		Steps:       []string{"sovar", "descansar", "assar"},
	}
	require.NoError(t, s.AddRecipe(ctx, u.ID, pao))

	t.Run("round-trips in insertion order", func(t *testing.T) {
		got, err := s.UserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, got.Recipes, 2)

		assert.Equal(t, "Bolo", got.Recipes[0].Title)
		assert.Equal(t, "40min", got.Recipes[0].PrepTime)
		assert.Equal(t, []string{"forma"}, got.Recipes[0].Tools)
		assert.Equal(t, []string{"farinha", "ovo"}, got.Recipes[0].Ingredients)
		assert.Equal(t, []string{"misturar", "assar"}, got.Recipes[0].Steps)

		assert.Equal(t, "Pão", got.Recipes[1].Title)
		assert.Equal(t, []string{"sovar", "descansar", "assar"}, got.Recipes[1].Steps)
	})

	t.Run("fails for unknown user", func(t *testing.T) {
		r := &model.Recipe{Title: "X", PrepTime: "1min", Tools: []string{"t"}, Ingredients: []string{"i"}, Steps: []string{"s"}}
		assert.Error(t, s.AddRecipe(ctx, "no-such-user", r))
	})
}

func TestDeleteRecipe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := newTestUser(t, s, "dono@example.com")
	other := newTestUser(t, s, "outro@example.com")

	recipe := &model.Recipe{
		Title:       "Feijoada",
		PrepTime:    "4h",
		Tools:       []string{"panela"},
		Ingredients: []string{"feijão"},
		Steps:       []string{"cozinhar"},
	}
	require.NoError(t, s.AddRecipe(ctx, owner.ID, recipe))

	t.Run("scoped to owner", func(t *testing.T) {
		// Another user deleting by a guessed id is a no-op.
		require.NoError(t, s.DeleteRecipe(ctx, other.ID, recipe.ID))

		got, err := s.UserByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, got.Recipes, 1)
	})

	t.Run("removes own recipe", func(t *testing.T) {
		require.NoError(t, s.DeleteRecipe(ctx, owner.ID, recipe.ID))

		got, err := s.UserByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Recipes)
	})

	t.Run("deleting a missing id is not an error", func(t *testing.T) {
		assert.NoError(t, s.DeleteRecipe(ctx, owner.ID, "never-existed"))
	})
}
