package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lfreitas/receitas-api/internal/model"
)

// AddRecipe appends recipe to userID's list inside one transaction.
// The position column records list order; concurrent appends for the
// same user may race on it, matching the source's last-write-wins
// update semantics.
func (s *SQLite) AddRecipe(ctx context.Context, userID string, recipe *model.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var pos int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM recipes WHERE user_id = ?`, userID,
	).Scan(&pos); err != nil {
		return fmt.Errorf("next position: %w", err)
	}

	// FK on user_id rejects the insert if the owner no longer exists.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, user_id, title, prep_time, position, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		recipe.ID, userID, recipe.Title, recipe.PrepTime, pos, recipe.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	if err := insertSeq(ctx, tx, `INSERT INTO recipe_tools (recipe_id, position, tool) VALUES (?, ?, ?)`, recipe.ID, recipe.Tools); err != nil {
		return fmt.Errorf("insert tools: %w", err)
	}
	if err := insertSeq(ctx, tx, `INSERT INTO recipe_ingredients (recipe_id, position, ingredient) VALUES (?, ?, ?)`, recipe.ID, recipe.Ingredients); err != nil {
		return fmt.Errorf("insert ingredients: %w", err)
	}
	if err := insertSeq(ctx, tx, `INSERT INTO recipe_steps (recipe_id, position, step) VALUES (?, ?, ?)`, recipe.ID, recipe.Steps); err != nil {
		return fmt.Errorf("insert steps: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// DeleteRecipe removes the recipe scoped to its owner. Zero rows
// affected is not an error: deleting an id that never existed, or that
// belongs to another user, is a no-op.
func (s *SQLite) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = ? AND user_id = ?`, recipeID, userID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// recipesForUser loads userID's recipes with their ordered sequences.
func (s *SQLite) recipesForUser(ctx context.Context, userID string) ([]model.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, prep_time, created_at FROM recipes WHERE user_id = ? ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		var r model.Recipe
		var created string
		if err := rows.Scan(&r.ID, &r.Title, &r.PrepTime, &created); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	for i := range recipes {
		r := &recipes[i]
		if r.Tools, err = s.seq(ctx, `SELECT tool FROM recipe_tools WHERE recipe_id = ? ORDER BY position`, r.ID); err != nil {
			return nil, err
		}
		if r.Ingredients, err = s.seq(ctx, `SELECT ingredient FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`, r.ID); err != nil {
			return nil, err
		}
		if r.Steps, err = s.seq(ctx, `SELECT step FROM recipe_steps WHERE recipe_id = ? ORDER BY position`, r.ID); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// seq reads a single ordered string column for one recipe.
func (s *SQLite) seq(ctx context.Context, query, recipeID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query sequence: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// insertSeq writes one ordered string sequence for a recipe.
func insertSeq(ctx context.Context, tx *sql.Tx, query, recipeID string, values []string) error {
	for i, v := range values {
		if _, err := tx.ExecContext(ctx, query, recipeID, i+1, v); err != nil {
			return err
		}
	}
	return nil
}
