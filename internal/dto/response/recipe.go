package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

type RecipeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	UserID      string               `json:"user_id"`
	Ingredients []IngredientResponse `json:"ingredients"`
	Reviews     []ReviewResponse     `json:"reviews"`
	CreatedAt   time.Time            `json:"created_at"`
}

type IngredientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Helper converters
func IngredientToResponse(ingredient *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:       ingredient.ID.String(),
		Name:     ingredient.Name,
		Category: ingredient.Category,
	}
}

func RecipeToResponse(recipe *entity.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		UserID:      recipe.UserID.String(),
		Ingredients: []IngredientResponse{},
		Reviews:     []ReviewResponse{},
		CreatedAt:   recipe.CreatedAt,
	}

	for _, ingredient := range recipe.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientToResponse(ingredient))
	}
	for _, review := range recipe.Reviews {
		resp.Reviews = append(resp.Reviews, ReviewToResponse(review, ""))
	}

	return resp
}
