package request

type CreateRecipeRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,max=1000"`
	IngredientIDs []string `json:"ingredient_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type UpdateRecipeRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,max=1000"`
	IngredientIDs []string `json:"ingredient_ids,omitempty" validate:"omitempty,dive,uuid4"`
}
