package usecase

import (
	"context"
	"fmt"

	"recipe-sharing/internal/authz"
	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, username string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, callerRole entity.UserRole, req *request.PaginatedRequest) (*response.PaginatedResponse, error)
	GetVisibleUsers(ctx context.Context, callerUsername string, callerRole entity.UserRole) ([]response.UserResponse, error)
	DeleteUser(ctx context.Context, callerRole entity.UserRole, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// GetAllUsers adalah full listing dengan detail - admin only
func (s *userService) GetAllUsers(ctx context.Context, callerRole entity.UserRole, req *request.PaginatedRequest) (*response.PaginatedResponse, error) {
	if err := authz.Authorize(authz.OpUserListAll, callerRole); err != nil {
		s.log.Warn("User listing denied", zap.String("role", string(callerRole)))
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return &response.PaginatedResponse{
		Items:      items,
		Page:       req.Page,
		PerPage:    req.Limit(),
		TotalItems: total,
	}, nil
}

// GetVisibleUsers: admin melihat semua user, role lain hanya record sendiri
func (s *userService) GetVisibleUsers(ctx context.Context, callerUsername string, callerRole entity.UserRole) ([]response.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, callerUsername)
	if err != nil {
		s.log.Error("Failed to find caller", zap.Error(err), zap.String("username", callerUsername))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	if callerRole != entity.RoleAdmin {
		return []response.UserResponse{response.UserToResponse(user)}, nil
	}

	users, err := s.userRepo.FindAll(ctx, 100, 0)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, response.UserToResponse(u))
	}

	return items, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerRole entity.UserRole, id uuid.UUID) error {
	// Guard dulu sebelum repo call apapun - denied check tanpa side effects
	if err := authz.Authorize(authz.OpUserDelete, callerRole); err != nil {
		s.log.Warn("User deletion denied",
			zap.String("role", string(callerRole)),
			zap.String("target_id", id.String()))
		return err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user for deletion", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return &utils.NotFoundError{Resource: "user"}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("User deleted by admin", zap.String("id", id.String()))
	return nil
}
