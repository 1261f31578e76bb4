package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/authz"
	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecipeService interface {
	GetAllRecipes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse, error)
	GetRecipeByID(ctx context.Context, id string) (*response.RecipeResponse, error)
	CreateRecipe(ctx context.Context, callerUsername string, req *request.CreateRecipeRequest) (*response.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, callerRole entity.UserRole, id string, req *request.UpdateRecipeRequest) (*response.RecipeResponse, error)
}

type recipeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRecipeService(repo *repository.Repository, log *zap.Logger) RecipeService {
	return &recipeService{
		repo: repo,
		log:  log,
	}
}

func (s *recipeService) GetAllRecipes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse, error) {
	recipes, err := s.repo.Recipe.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list recipes", zap.Error(err))
		return nil, fmt.Errorf("failed to list recipes")
	}

	total, err := s.repo.Recipe.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count recipes", zap.Error(err))
		return nil, fmt.Errorf("failed to list recipes")
	}

	items := make([]response.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, response.RecipeToResponse(recipe))
	}

	return &response.PaginatedResponse{
		Items:      items,
		Page:       req.Page,
		PerPage:    req.Limit(),
		TotalItems: total,
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (*response.RecipeResponse, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, &utils.InvalidInputError{Reason: "invalid recipe id"}
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeID)
	if err != nil {
		s.log.Error("Failed to get recipe", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get recipe")
	}
	if recipe == nil {
		return nil, &utils.NotFoundError{Resource: "recipe"}
	}

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, callerUsername string, req *request.CreateRecipeRequest) (*response.RecipeResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create recipe validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	// 2. Caller jadi owner recipe
	user, err := s.repo.User.FindByUsername(ctx, callerUsername)
	if err != nil {
		s.log.Error("Failed to find recipe owner", zap.Error(err), zap.String("username", callerUsername))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	// 3. Resolve ingredient links
	ingredientIDs, ingredients, err := s.resolveIngredients(ctx, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	// 4. Create recipe
	now := time.Now()
	recipe := &entity.Recipe{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		UserID:      user.ID,
		Ingredients: ingredients,
	}

	if err := s.repo.Recipe.Create(ctx, recipe, ingredientIDs); err != nil {
		return nil, err
	}

	s.log.Info("Recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("owner", callerUsername))

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, callerRole entity.UserRole, id string, req *request.UpdateRecipeRequest) (*response.RecipeResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update recipe validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, &utils.InvalidInputError{Reason: "invalid recipe id"}
	}

	// 2. Recipe harus ada
	recipe, err := s.repo.Recipe.FindByID(ctx, recipeID)
	if err != nil {
		s.log.Error("Failed to find recipe for update", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to find recipe")
	}
	if recipe == nil {
		return nil, &utils.NotFoundError{Resource: "recipe"}
	}

	// 3. Hanya chef yang boleh update - role check saja, BUKAN ownership.
	// Guard sebelum repository mutation apapun.
	if err := authz.Authorize(authz.OpRecipeUpdate, callerRole); err != nil {
		s.log.Warn("Recipe update denied",
			zap.String("role", string(callerRole)),
			zap.String("recipe_id", id))
		return nil, err
	}

	// 4. Resolve ingredient links
	ingredientIDs, ingredients, err := s.resolveIngredients(ctx, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.UpdatedAt = time.Now()

	if err := s.repo.Recipe.Update(ctx, recipe, ingredientIDs); err != nil {
		return nil, err
	}

	if ingredients != nil {
		recipe.Ingredients = ingredients
	}

	s.log.Info("Recipe updated", zap.String("recipe_id", id))

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

// resolveIngredients parses & checks that every referenced ingredient exists
func (s *recipeService) resolveIngredients(ctx context.Context, rawIDs []string) ([]uuid.UUID, []*entity.Ingredient, error) {
	if len(rawIDs) == 0 {
		return nil, nil, nil
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, &utils.InvalidInputError{Reason: "invalid ingredient id " + raw}
		}
		ids = append(ids, id)
	}

	ingredients, err := s.repo.Ingredient.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to resolve ingredients", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to resolve ingredients")
	}
	if len(ingredients) != len(ids) {
		return nil, nil, &utils.NotFoundError{Resource: "ingredient"}
	}

	return ids, ingredients, nil
}
