package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireIngredient(
	r chi.Router,
	ingredientHandler *adaptor.IngredientHandler,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(issuer, log))

		// GET /api/ingredients - list ingredients
		r.Get("/api/ingredients", ingredientHandler.GetAllIngredients)

		// POST /api/ingredients - create ingredient
		r.Post("/api/ingredients", ingredientHandler.CreateIngredient)
	})
}
