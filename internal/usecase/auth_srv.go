package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	issuer *utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	// 2. Cek username sudah dipakai - username dicek SEBELUM email,
	// pelanggaran pertama yang dilaporkan
	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return nil, &utils.ConflictError{Field: "username"}
	}

	// 3. Cek email sudah terdaftar
	existingUser, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, &utils.ConflictError{Field: "email"}
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// 5. Role default "user" kecuali dikirim explicit
	role := entity.UserRole(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, &utils.InvalidInputError{Reason: "unknown role " + req.Role}
	}

	// 6. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}

	// 7. Save user - unique constraint di DB tetap jadi guarantee terakhir
	// kalau ada race antara pre-check dan insert
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	// 2. Find user by username
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	// 3. Check password
	match, err := utils.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil {
		s.log.Error("Stored password hash is malformed", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}
	if !match {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, &utils.InvalidCredentialsError{}
	}

	// 4. Mint token dengan claims {username, role}
	token, err := s.issuer.Issue(user.Username, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}
