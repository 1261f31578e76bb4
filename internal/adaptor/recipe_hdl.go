package adaptor

import (
	"encoding/json"
	"net/http"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	service usecase.RecipeService
	log     *zap.Logger
}

func NewRecipeHandler(service usecase.RecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		log:     log.With(zap.String("handler", "recipe")),
	}
}

// GetAllRecipes handles GET /api/recipes (protected)
func (h *RecipeHandler) GetAllRecipes(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	recipes, err := h.service.GetAllRecipes(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get recipes")
		return
	}

	utils.ResponseSuccess(w, "success", recipes)
}

// GetRecipeByID handles GET /api/recipes/{id} (protected)
func (h *RecipeHandler) GetRecipeByID(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "id")
	if recipeID == "" {
		utils.ResponseBadRequest(w, "Recipe ID is required", nil)
		return
	}

	recipe, err := h.service.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get recipe")
		return
	}

	utils.ResponseSuccess(w, "success", recipe)
}

// CreateRecipe handles POST /api/recipes (protected)
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), username, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create recipe")
		return
	}

	utils.ResponseCreated(w, "success", recipe)
}

// UpdateRecipe handles PUT /api/recipes/{id} (protected, chef only)
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	recipeID := chi.URLParam(r, "id")
	if recipeID == "" {
		utils.ResponseBadRequest(w, "Recipe ID is required", nil)
		return
	}

	var req request.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), entity.UserRole(role), recipeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update recipe")
		return
	}

	utils.ResponseSuccess(w, "success", recipe)
}
