package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/google/uuid"
)

// ListRecipes returns every recipe in creation order.
func (s *SQLiteStorage) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image_url, ingredients, instructions
		FROM recipes
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		recipes = append(recipes, *recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe returns the recipe with the given id, or common.ErrNotFound.
func (s *SQLiteStorage) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.getRecipeTx(ctx, s.db, id)
}

func (s *SQLiteStorage) getRecipeTx(ctx context.Context, q queryable, id string) (*model.Recipe, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, name, image_url, ingredients, instructions
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// CreateRecipe validates and stores a draft under a new id.
func (s *SQLiteStorage) CreateRecipe(ctx context.Context, draft model.Draft) (*model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	clean, err := model.NewDraft(draft.Name, draft.Ingredients, draft.Instructions)
	if err != nil {
		return nil, err
	}

	recipe := clean.Recipe()
	recipe.ID = uuid.New().String()

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ingredients: %w", err)
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode instructions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, name, image_url, ingredients, instructions)
		VALUES (?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Name, recipe.ImageURL, string(ingredients), string(instructions))
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	return &recipe, nil
}

// CountRecipes returns the number of stored recipes.
func (s *SQLiteStorage) CountRecipes(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (*model.Recipe, error) {
	var (
		recipe       model.Recipe
		ingredients  string
		instructions string
	)
	if err := row.Scan(&recipe.ID, &recipe.Name, &recipe.ImageURL, &ingredients, &instructions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan recipe: %w", err)
	}
	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients of %s: %w", recipe.ID, err)
	}
	if err := json.Unmarshal([]byte(instructions), &recipe.Instructions); err != nil {
		return nil, fmt.Errorf("failed to decode instructions of %s: %w", recipe.ID, err)
	}
	return &recipe, nil
}
