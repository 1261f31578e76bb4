package usecase

import (
	"context"
	"testing"
	"time"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(users *fakeUserRepo, username string, role entity.UserRole) *entity.User {
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$irrelevant",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	users.users[user.ID] = user
	return user
}

func seedRecipe(recipes *fakeRecipeRepo, ownerID uuid.UUID) *entity.Recipe {
	recipe := &entity.Recipe{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Nasi Goreng",
		Description: "Fried rice with sweet soy sauce",
		UserID:      ownerID,
	}
	recipes.recipes[recipe.ID] = recipe
	return recipe
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("caller becomes the owner", func(t *testing.T) {
		repo, users, recipes, _, _ := newTestRepository()
		owner := seedUser(users, "chefjohn", entity.RoleChef)
		svc := NewRecipeService(repo, zap.NewNop())

		resp, err := svc.CreateRecipe(ctx, "chefjohn", &request.CreateRecipeRequest{
			Name:        "Rendang",
			Description: "Slow-cooked beef in coconut milk",
		})
		require.NoError(t, err)
		assert.Equal(t, "Rendang", resp.Name)
		assert.Equal(t, owner.ID.String(), resp.UserID)
		assert.Len(t, recipes.recipes, 1)
	})

	t.Run("ingredient links resolved and stored", func(t *testing.T) {
		repo, users, _, ingredients, _ := newTestRepository()
		seedUser(users, "chefjohn", entity.RoleChef)
		svc := NewRecipeService(repo, zap.NewNop())

		ingredient := &entity.Ingredient{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       "Lemongrass",
			Category:   "herb",
		}
		ingredients.ingredients[ingredient.ID] = ingredient

		resp, err := svc.CreateRecipe(ctx, "chefjohn", &request.CreateRecipeRequest{
			Name:          "Rendang",
			Description:   "Slow-cooked beef in coconut milk",
			IngredientIDs: []string{ingredient.ID.String()},
		})
		require.NoError(t, err)
		require.Len(t, resp.Ingredients, 1)
		assert.Equal(t, "Lemongrass", resp.Ingredients[0].Name)
	})

	t.Run("unknown ingredient is not found", func(t *testing.T) {
		repo, users, _, _, _ := newTestRepository()
		seedUser(users, "chefjohn", entity.RoleChef)
		svc := NewRecipeService(repo, zap.NewNop())

		_, err := svc.CreateRecipe(ctx, "chefjohn", &request.CreateRecipeRequest{
			Name:          "Rendang",
			Description:   "Slow-cooked beef in coconut milk",
			IngredientIDs: []string{uuid.NewString()},
		})
		require.Error(t, err)

		var notFound *utils.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ingredient", notFound.Resource)
	})

	t.Run("unknown caller is not found", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewRecipeService(repo, zap.NewNop())

		_, err := svc.CreateRecipe(ctx, "ghost", &request.CreateRecipeRequest{
			Name:        "Rendang",
			Description: "Slow-cooked beef in coconut milk",
		})
		require.Error(t, err)

		var notFound *utils.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	ctx := context.Background()
	updateReq := &request.UpdateRecipeRequest{
		Name:        "Nasi Goreng Spesial",
		Description: "Fried rice, now with extra egg",
	}

	t.Run("chef may update any recipe", func(t *testing.T) {
		repo, users, recipes, _, _ := newTestRepository()
		owner := seedUser(users, "someoneelse", entity.RoleUser)
		recipe := seedRecipe(recipes, owner.ID)
		svc := NewRecipeService(repo, zap.NewNop())

		resp, err := svc.UpdateRecipe(ctx, entity.RoleChef, recipe.ID.String(), updateReq)
		require.NoError(t, err)
		assert.Equal(t, "Nasi Goreng Spesial", resp.Name)
		assert.True(t, recipes.updated)
	})

	t.Run("user role denied without side effects", func(t *testing.T) {
		repo, users, recipes, _, _ := newTestRepository()
		owner := seedUser(users, "plainuser", entity.RoleUser)
		recipe := seedRecipe(recipes, owner.ID)
		svc := NewRecipeService(repo, zap.NewNop())

		// bahkan owner-nya sendiri ditolak kalau bukan chef
		_, err := svc.UpdateRecipe(ctx, entity.RoleUser, recipe.ID.String(), updateReq)
		require.Error(t, err)

		var denied *utils.AccessDeniedError
		require.ErrorAs(t, err, &denied)
		assert.False(t, recipes.updated)
		assert.Equal(t, "Nasi Goreng", recipes.recipes[recipe.ID].Name)
	})

	t.Run("admin role denied", func(t *testing.T) {
		repo, users, recipes, _, _ := newTestRepository()
		owner := seedUser(users, "plainuser", entity.RoleUser)
		recipe := seedRecipe(recipes, owner.ID)
		svc := NewRecipeService(repo, zap.NewNop())

		_, err := svc.UpdateRecipe(ctx, entity.RoleAdmin, recipe.ID.String(), updateReq)
		require.Error(t, err)

		var denied *utils.AccessDeniedError
		assert.ErrorAs(t, err, &denied)
	})

	t.Run("missing recipe reported before access check", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewRecipeService(repo, zap.NewNop())

		// role user juga ditolak, tapi recipe tidak ada: not found yang menang
		_, err := svc.UpdateRecipe(ctx, entity.RoleUser, uuid.NewString(), updateReq)
		require.Error(t, err)

		var notFound *utils.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "recipe", notFound.Resource)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewRecipeService(repo, zap.NewNop())

		_, err := svc.UpdateRecipe(ctx, entity.RoleChef, "not-a-uuid", updateReq)
		require.Error(t, err)

		var invalidInput *utils.InvalidInputError
		assert.ErrorAs(t, err, &invalidInput)
	})
}

func TestRecipeService_GetRecipeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing recipe is not found", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewRecipeService(repo, zap.NewNop())

		_, err := svc.GetRecipeByID(ctx, uuid.NewString())
		require.Error(t, err)

		var notFound *utils.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("existing recipe returned", func(t *testing.T) {
		repo, users, recipes, _, _ := newTestRepository()
		owner := seedUser(users, "chefjohn", entity.RoleChef)
		recipe := seedRecipe(recipes, owner.ID)
		svc := NewRecipeService(repo, zap.NewNop())

		resp, err := svc.GetRecipeByID(ctx, recipe.ID.String())
		require.NoError(t, err)
		assert.Equal(t, recipe.ID.String(), resp.ID)
		assert.Equal(t, "Nasi Goreng", resp.Name)
	})
}
