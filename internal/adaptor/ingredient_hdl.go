package adaptor

import (
	"encoding/json"
	"net/http"

	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/usecase"
	"recipe-sharing/pkg/utils"

	"go.uber.org/zap"
)

type IngredientHandler struct {
	service usecase.IngredientService
	log     *zap.Logger
}

func NewIngredientHandler(service usecase.IngredientService, log *zap.Logger) *IngredientHandler {
	return &IngredientHandler{
		service: service,
		log:     log.With(zap.String("handler", "ingredient")),
	}
}

// GetAllIngredients handles GET /api/ingredients (protected)
func (h *IngredientHandler) GetAllIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.GetAllIngredients(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get ingredients")
		return
	}

	utils.ResponseSuccess(w, "success", ingredients)
}

// CreateIngredient handles POST /api/ingredients (protected)
func (h *IngredientHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req request.CreateIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ingredient, err := h.service.CreateIngredient(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ingredient")
		return
	}

	utils.ResponseCreated(w, "success", ingredient)
}
