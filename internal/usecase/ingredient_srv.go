package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IngredientService interface {
	GetAllIngredients(ctx context.Context) ([]response.IngredientResponse, error)
	CreateIngredient(ctx context.Context, req *request.CreateIngredientRequest) (*response.IngredientResponse, error)
}

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	log            *zap.Logger
}

func NewIngredientService(ingredientRepo repository.IngredientRepository, log *zap.Logger) IngredientService {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		log:            log,
	}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]response.IngredientResponse, error) {
	ingredients, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list ingredients", zap.Error(err))
		return nil, fmt.Errorf("failed to list ingredients")
	}

	items := make([]response.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		items = append(items, response.IngredientToResponse(ingredient))
	}

	return items, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req *request.CreateIngredientRequest) (*response.IngredientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ingredient validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	ingredient := &entity.Ingredient{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:     req.Name,
		Category: req.Category,
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}

	s.log.Info("Ingredient created",
		zap.String("ingredient_id", ingredient.ID.String()),
		zap.String("name", ingredient.Name))

	resp := response.IngredientToResponse(ingredient)
	return &resp, nil
}
