package entity

type Ingredient struct {
	BaseSimple
	Name     string `db:"name"`
	Category string `db:"category"`
}
