package usecase

import (
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Recipe     RecipeService
	Review     ReviewService
	Ingredient IngredientService
}

func NewService(repo *repository.Repository, issuer *utils.TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, issuer, log),
		User:       NewUserService(repo.User, log),
		Recipe:     NewRecipeService(repo, log),
		Review:     NewReviewService(repo, log),
		Ingredient: NewIngredientService(repo.Ingredient, log),
	}
}
