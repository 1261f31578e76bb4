package repository

import (
	"context"
	"fmt"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/pkg/database"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error
}

type recipeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRecipeRepository(db database.PgxIface, log *zap.Logger) RecipeRepository {
	return &recipeRepository{
		db:  db,
		log: log,
	}
}

// Create inserts recipe dan link ingredients dalam satu transaction
func (rr *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error {
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create recipe tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recipes (id, name, description, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.Description,
		recipe.UserID,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	)
	if err != nil {
		rr.log.Error("Failed to create recipe",
			zap.Error(err),
			zap.String("name", recipe.Name),
		)
		return fmt.Errorf("create recipe %s: %w", recipe.Name, err)
	}

	if err := linkIngredients(ctx, tx, recipe.ID, ingredientIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create recipe tx: %w", err)
	}

	return nil
}

// linkIngredients inserts join rows recipe_ingredients
func linkIngredients(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, ingredientIDs []uuid.UUID) error {
	query := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	for _, ingredientID := range ingredientIDs {
		if _, err := tx.Exec(ctx, query, recipeID, ingredientID); err != nil {
			return fmt.Errorf("link ingredient %s: %w", ingredientID.String(), err)
		}
	}

	return nil
}

func (rr *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at, deleted_at
		FROM recipes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var recipe entity.Recipe
	// QueryRow returns at most one row
	err := rr.db.QueryRow(ctx, query, id).Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.UserID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
		&recipe.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find recipe by ID",
			zap.Error(err),
			zap.String("recipe_id", id.String()),
		)
		return nil, fmt.Errorf("find recipe by ID %s: %w", id.String(), err)
	}

	// Load relations
	if err := rr.loadIngredients(ctx, &recipe); err != nil {
		return nil, err
	}
	if err := rr.loadReviews(ctx, &recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}

// FindAll retrieves paginated recipes dengan ingredients & reviews
func (rr *recipeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM recipes
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := rr.db.Query(ctx, query, limit, offset)
	if err != nil {
		rr.log.Error("Failed to get all recipes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all recipes limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var recipes []*entity.Recipe
	for rows.Next() {
		var recipe entity.Recipe
		err := rows.Scan(
			&recipe.ID,
			&recipe.Name,
			&recipe.Description,
			&recipe.UserID,
			&recipe.CreatedAt,
			&recipe.UpdatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan recipe row", zap.Error(err))
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		recipes = append(recipes, &recipe)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate recipes rows: %w", err)
	}

	for _, recipe := range recipes {
		if err := rr.loadIngredients(ctx, recipe); err != nil {
			return nil, err
		}
		if err := rr.loadReviews(ctx, recipe); err != nil {
			return nil, err
		}
	}

	return recipes, nil
}

func (rr *recipeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM recipes WHERE deleted_at IS NULL`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting recipes", zap.Error(err))
		return 0, fmt.Errorf("count all recipes: %w", err)
	}

	return count, nil
}

// Update menimpa name/description dan replace ingredient links
func (rr *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error {
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update recipe tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE recipes
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := tx.Exec(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.Description,
		recipe.UpdatedAt,
	)
	if err != nil {
		rr.log.Error("Failed to update recipe",
			zap.Error(err),
			zap.String("recipe_id", recipe.ID.String()),
		)
		return fmt.Errorf("update recipe %s: %w", recipe.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return &utils.NotFoundError{Resource: "recipe"}
	}

	if ingredientIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("unlink ingredients for recipe %s: %w", recipe.ID.String(), err)
		}
		if err := linkIngredients(ctx, tx, recipe.ID, ingredientIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update recipe tx: %w", err)
	}

	return nil
}

func (rr *recipeRepository) loadIngredients(ctx context.Context, recipe *entity.Recipe) error {
	query := `
		SELECT i.id, i.name, i.category, i.created_at
		FROM ingredients i
		JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
		WHERE ri.recipe_id = $1
		ORDER BY i.name
	`

	rows, err := rr.db.Query(ctx, query, recipe.ID)
	if err != nil {
		return fmt.Errorf("load ingredients for recipe %s: %w", recipe.ID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var ingredient entity.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.Category, &ingredient.CreatedAt); err != nil {
			return fmt.Errorf("scan ingredient row: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, &ingredient)
	}

	return rows.Err()
}

func (rr *recipeRepository) loadReviews(ctx context.Context, recipe *entity.Recipe) error {
	query := `
		SELECT id, user_id, recipe_id, text, score, created_at
		FROM reviews
		WHERE recipe_id = $1
		ORDER BY created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, recipe.ID)
	if err != nil {
		return fmt.Errorf("load reviews for recipe %s: %w", recipe.ID.String(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var review entity.Review
		if err := rows.Scan(&review.ID, &review.UserID, &review.RecipeID, &review.Text, &review.Score, &review.CreatedAt); err != nil {
			return fmt.Errorf("scan review row: %w", err)
		}
		recipe.Reviews = append(recipe.Reviews, &review)
	}

	return rows.Err()
}
