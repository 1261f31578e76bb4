package repository

import (
	"context"
	"fmt"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ingredient, error)
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)
}

type ingredientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIngredientRepository(db database.PgxIface, log *zap.Logger) IngredientRepository {
	return &ingredientRepository{
		db:  db,
		log: log,
	}
}

func (ir *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := ir.db.Exec(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.Category,
		ingredient.CreatedAt,
	)
	if err != nil {
		ir.log.Error("Failed to create ingredient",
			zap.Error(err),
			zap.String("name", ingredient.Name),
		)
		return fmt.Errorf("create ingredient %s: %w", ingredient.Name, err)
	}

	return nil
}

func (ir *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, created_at
		FROM ingredients
		WHERE id = $1
	`

	var ingredient entity.Ingredient
	err := ir.db.QueryRow(ctx, query, id).Scan(
		&ingredient.ID,
		&ingredient.Name,
		&ingredient.Category,
		&ingredient.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find ingredient by ID",
			zap.Error(err),
			zap.String("ingredient_id", id.String()),
		)
		return nil, fmt.Errorf("find ingredient by ID %s: %w", id.String(), err)
	}

	return &ingredient, nil
}

// FindByIDs loads ingredients untuk validasi link di recipe create/update
func (ir *ingredientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, created_at
		FROM ingredients
		WHERE id = ANY($1)
	`

	rows, err := ir.db.Query(ctx, query, ids)
	if err != nil {
		ir.log.Error("Failed to find ingredients by IDs", zap.Error(err))
		return nil, fmt.Errorf("find ingredients by IDs: %w", err)
	}
	defer rows.Close()

	var ingredients []*entity.Ingredient
	for rows.Next() {
		var ingredient entity.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.Category, &ingredient.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient row: %w", err)
		}
		ingredients = append(ingredients, &ingredient)
	}

	return ingredients, rows.Err()
}

func (ir *ingredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, created_at
		FROM ingredients
		ORDER BY name
	`

	rows, err := ir.db.Query(ctx, query)
	if err != nil {
		ir.log.Error("Failed to get all ingredients", zap.Error(err))
		return nil, fmt.Errorf("find all ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*entity.Ingredient
	for rows.Next() {
		var ingredient entity.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.Category, &ingredient.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient row: %w", err)
		}
		ingredients = append(ingredients, &ingredient)
	}

	return ingredients, rows.Err()
}
