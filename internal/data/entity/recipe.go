package entity

import (
	"github.com/google/uuid"
)

type Recipe struct {
	Base
	Name        string    `db:"name"`
	Description string    `db:"description"`
	UserID      uuid.UUID `db:"user_id"` // pemilik recipe

	// Loaded relations (not columns)
	Ingredients []*Ingredient
	Reviews     []*Review
}
