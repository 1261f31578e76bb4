package adaptor

import (
	"errors"

	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/utils"

	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Recipe     *RecipeHandler
	Review     *ReviewHandler
	Ingredient *IngredientHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Recipe:     NewRecipeHandler(service.Recipe, log),
		Review:     NewReviewHandler(service.Review, log),
		Ingredient: NewIngredientHandler(service.Ingredient, log),
	}
}

// handleServiceError maps typed service errors ke HTTP status.
// Satu switch untuk semua handler supaya mapping-nya tidak drift.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		notFound     *utils.NotFoundError
		conflict     *utils.ConflictError
		badCreds     *utils.InvalidCredentialsError
		accessDenied *utils.AccessDeniedError
		badInput     *utils.InvalidInputError
	)

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &conflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.As(err, &badCreds):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.As(err, &accessDenied):
		log.Warn(operation+" failed - access denied", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.As(err, &badInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
