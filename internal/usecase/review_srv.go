package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/authz"
	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse, error)
	GetReviewByID(ctx context.Context, id string) (*response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, callerUsername string) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, callerUsername string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, callerRole entity.UserRole, id string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log,
	}
}

// GetAllReviews lists reviews bersama username penulisnya
func (s *reviewService) GetAllReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list reviews")
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		username := ""
		writer, err := s.repo.User.FindByID(ctx, review.UserID)
		if err != nil {
			s.log.Warn("Failed to load review writer",
				zap.Error(err),
				zap.String("review_id", review.ID.String()))
		} else if writer != nil {
			username = writer.Username
		}
		items = append(items, response.ReviewToResponse(review, username))
	}

	return &response.PaginatedResponse{
		Items:      items,
		Page:       req.Page,
		PerPage:    req.Limit(),
		TotalItems: int64(len(items)),
	}, nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, id string) (*response.ReviewResponse, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, &utils.InvalidInputError{Reason: "invalid review id"}
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get review")
	}
	if review == nil {
		return nil, &utils.NotFoundError{Resource: "review"}
	}

	resp := response.ReviewToResponse(review, "")
	return &resp, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, callerUsername string) ([]response.ReviewResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, callerUsername)
	if err != nil {
		s.log.Error("Failed to find caller", zap.Error(err), zap.String("username", callerUsername))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to list user reviews", zap.Error(err), zap.String("username", callerUsername))
		return nil, fmt.Errorf("failed to list reviews")
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, response.ReviewToResponse(review, user.Username))
	}

	return items, nil
}

func (s *reviewService) CreateReview(ctx context.Context, callerUsername string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, &utils.InvalidInputError{Reason: utils.FormatValidationErrors(errs)}
	}

	// 2. Writer harus ada
	user, err := s.repo.User.FindByUsername(ctx, callerUsername)
	if err != nil {
		s.log.Error("Failed to find review writer", zap.Error(err), zap.String("username", callerUsername))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}

	// 3. Recipe harus ada
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, &utils.InvalidInputError{Reason: "invalid recipe id"}
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeID)
	if err != nil {
		s.log.Error("Failed to find recipe for review", zap.Error(err), zap.String("recipe_id", req.RecipeID))
		return nil, fmt.Errorf("failed to find recipe")
	}
	if recipe == nil {
		return nil, &utils.NotFoundError{Resource: "recipe"}
	}

	// 4. Create review
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   user.ID,
		RecipeID: recipeID,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("recipe_id", req.RecipeID),
		zap.String("writer", callerUsername))

	resp := response.ReviewToResponse(review, user.Username)
	return &resp, nil
}

// DeleteReview: semua authenticated role boleh delete by id
func (s *reviewService) DeleteReview(ctx context.Context, callerRole entity.UserRole, id string) error {
	if err := authz.Authorize(authz.OpReviewDelete, callerRole); err != nil {
		s.log.Warn("Review deletion denied",
			zap.String("role", string(callerRole)),
			zap.String("review_id", id))
		return err
	}

	reviewID, err := uuid.Parse(id)
	if err != nil {
		return &utils.InvalidInputError{Reason: "invalid review id"}
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to find review for deletion", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to find review")
	}
	if review == nil {
		return &utils.NotFoundError{Resource: "review"}
	}

	return s.repo.Review.Delete(ctx, reviewID)
}
