package usecase

import (
	"context"
	"testing"

	"recipe-sharing/internal/authz"
	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIssuer(t *testing.T) *utils.TokenIssuer {
	t.Helper()
	issuer, err := utils.NewTokenIssuer(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	require.NoError(t, err)
	return issuer
}

func validRegisterRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:  "chefjohn",
		Email:     "chefjohn@example.com",
		Password:  "chef123",
		FirstName: "John",
		LastName:  "Dough",
		Role:      "chef",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("register succeeds with explicit role", func(t *testing.T) {
		repo, users, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		resp, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		assert.Equal(t, "chefjohn", resp.Username)
		assert.Equal(t, entity.RoleChef, resp.Role)
		assert.NotEmpty(t, resp.ID)

		// password tersimpan sebagai hash, bukan plaintext
		stored, err := users.FindByUsername(ctx, "chefjohn")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "chef123", stored.PasswordHash)
		match, err := utils.CheckPasswordHash("chef123", stored.PasswordHash)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("default role is user when omitted", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		req := validRegisterRequest()
		req.Role = ""
		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, resp.Role)
	})

	t.Run("duplicate username conflicts even with different email", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		req := validRegisterRequest()
		req.Email = "other@example.com"
		_, err = svc.Register(ctx, req)
		require.Error(t, err)

		var conflict *utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "username", conflict.Field)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		req := validRegisterRequest()
		req.Username = "otherchef"
		_, err = svc.Register(ctx, req)
		require.Error(t, err)

		var conflict *utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
	})

	t.Run("username conflict reported before email conflict", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		// dua-duanya duplikat: username yang dilaporkan
		_, err = svc.Register(ctx, validRegisterRequest())
		require.Error(t, err)

		var conflict *utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "username", conflict.Field)
	})

	t.Run("invalid payload rejected before any lookup", func(t *testing.T) {
		repo, _, _, _, _ := newTestRepository()
		svc := NewAuthService(repo, newTestIssuer(t), zap.NewNop())

		req := validRegisterRequest()
		req.Password = "short"
		_, err := svc.Register(ctx, req)
		require.Error(t, err)

		var invalidInput *utils.InvalidInputError
		assert.ErrorAs(t, err, &invalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (AuthService, *utils.TokenIssuer) {
		repo, _, _, _, _ := newTestRepository()
		issuer := newTestIssuer(t)
		svc := NewAuthService(repo, issuer, zap.NewNop())
		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		return svc, issuer
	}

	t.Run("login returns token with role claim", func(t *testing.T) {
		svc, issuer := setup(t)

		resp, err := svc.Login(ctx, &request.LoginRequest{Username: "chefjohn", Password: "chef123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "chefjohn", resp.Username)
		assert.Equal(t, "John Dough", resp.Fullname)
		assert.Equal(t, entity.RoleChef, resp.Role)

		claims, err := issuer.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "chefjohn", claims.Username)
		assert.Equal(t, "chef", claims.Role)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "chef123"})
		require.Error(t, err)

		var notFound *utils.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "chefjohn", Password: "wrong-password"})
		require.Error(t, err)

		var invalidCreds *utils.InvalidCredentialsError
		assert.ErrorAs(t, err, &invalidCreds)
	})
}

// Register -> login -> authorize sebagai satu alur utuh.
func TestAuthFlow_ChefCanUpdateRecipes(t *testing.T) {
	ctx := context.Background()
	repo, _, _, _, _ := newTestRepository()
	issuer := newTestIssuer(t)
	svc := NewAuthService(repo, issuer, zap.NewNop())

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "chefjohn", Password: "chef123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, entity.RoleChef, resp.Role)

	claims, err := issuer.Verify(resp.Token)
	require.NoError(t, err)

	role := entity.UserRole(claims.Role)
	assert.NoError(t, authz.Authorize(authz.OpRecipeUpdate, role))
	assert.Error(t, authz.Authorize(authz.OpRecipeUpdate, entity.RoleUser))
}
