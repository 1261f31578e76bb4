package request

type CreateReviewRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,uuid4"`
	Text     string `json:"text" validate:"required,max=500"`
	Score    int    `json:"score" validate:"required,min=1,max=5"`
}
