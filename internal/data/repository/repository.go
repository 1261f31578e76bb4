package repository

import (
	"recipe-sharing/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Recipe     RecipeRepository
	Ingredient IngredientRepository
	Review     ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Recipe:     NewRecipeRepository(db, log),
		Ingredient: NewIngredientRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}
