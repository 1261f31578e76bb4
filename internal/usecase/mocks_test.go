package usecase

import (
	"context"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes untuk repository interfaces.

func newTestRepository() (*repository.Repository, *fakeUserRepo, *fakeRecipeRepo, *fakeIngredientRepo, *fakeReviewRepo) {
	users := newFakeUserRepo()
	recipes := newFakeRecipeRepo()
	ingredients := newFakeIngredientRepo()
	reviews := newFakeReviewRepo()

	repo := &repository.Repository{
		User:       users,
		Recipe:     recipes,
		Ingredient: ingredients,
		Review:     reviews,
	}
	return repo, users, recipes, ingredients, reviews
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var users []*entity.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeRecipeRepo struct {
	recipes   map[uuid.UUID]*entity.Recipe
	createErr error
	updateErr error
	updated   bool
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[uuid.UUID]*entity.Recipe)}
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	return f.recipes[id], nil
}

func (f *fakeRecipeRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error) {
	var recipes []*entity.Recipe
	for _, recipe := range f.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (f *fakeRecipeRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

func (f *fakeRecipeRepo) Update(ctx context.Context, recipe *entity.Recipe, ingredientIDs []uuid.UUID) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.recipes[recipe.ID] = recipe
	f.updated = true
	return nil
}

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*entity.Ingredient
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{ingredients: make(map[uuid.UUID]*entity.Ingredient)}
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	f.ingredients[ingredient.ID] = ingredient
	return nil
}

func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	return f.ingredients[id], nil
}

func (f *fakeIngredientRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ingredient, error) {
	var found []*entity.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			found = append(found, ingredient)
		}
	}
	return found, nil
}

func (f *fakeIngredientRepo) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredients []*entity.Ingredient
	for _, ingredient := range f.ingredients {
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
	deleted bool
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range f.reviews {
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (f *fakeReviewRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range f.reviews {
		if review.UserID == userID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	f.deleted = true
	return nil
}
