// Package store persists users and their recipes. The Store interface
// keeps the HTTP layer independent of the backing database.
package store

import (
	"context"
	"errors"

	"github.com/lfreitas/receitas-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no user.
var ErrNotFound = errors.New("not found")

// Store defines the credential-store operations the handlers need.
type Store interface {
	// CreateUser persists a new user. ID and CreatedAt are assigned if
	// unset. Fails if the email is already registered.
	CreateUser(ctx context.Context, user *model.User) error

	// UserByEmail loads a user without recipes. Returns ErrNotFound if
	// no user has that email.
	UserByEmail(ctx context.Context, email string) (*model.User, error)

	// UserByID loads a user including recipes, in insertion order.
	// Returns ErrNotFound if the id is unknown.
	UserByID(ctx context.Context, id string) (*model.User, error)

	// AddRecipe appends a recipe to the user's list. ID and CreatedAt
	// are assigned if unset.
	AddRecipe(ctx context.Context, userID string, recipe *model.Recipe) error

	// DeleteRecipe removes the recipe only if it belongs to userID.
	// Removing a recipe that does not exist (or belongs to someone
	// else) is not an error.
	DeleteRecipe(ctx context.Context, userID, recipeID string) error

	// Close releases the underlying database handle.
	Close() error
}
