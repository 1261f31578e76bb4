package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRecipe(
	r chi.Router,
	recipeHandler *adaptor.RecipeHandler,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))

		// GET /api/recipes - list recipes
		r.Get("/api/recipes", recipeHandler.GetAllRecipes)

		// GET /api/recipes/{id} - recipe detail
		r.Get("/api/recipes/{id}", recipeHandler.GetRecipeByID)

		// POST /api/recipes - create recipe (caller becomes owner)
		r.Post("/api/recipes", recipeHandler.CreateRecipe)

		// PUT /api/recipes/{id} - update recipe (chef only, checked in service)
		r.Put("/api/recipes/{id}", recipeHandler.UpdateRecipe)
	})
}
