package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	RecipeID uuid.UUID `db:"recipe_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"` // 1-5
}
