package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetRestaurantReviews(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	// Check if restaurant exists
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		s.log.Error("Failed to look up restaurant", zap.Error(err))
		return nil, fmt.Errorf("look up restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, req.RestaurantID)
	}

	// One review per user per restaurant
	existingReview, err := s.repo.Review.FindByUserAndRestaurant(ctx, userUUID, restaurantID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existingReview != nil {
		return nil, fmt.Errorf("review by this user %w for restaurant %s", ErrConflict, req.RestaurantID)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       userUUID,
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Get reviewer name for the response
	user, _ := s.repo.User.FindByID(ctx, userUUID)
	username := ""
	if user != nil {
		username = user.Username
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Int("rating", req.Rating),
	)

	reviewResp := response.ReviewToResponse(review, username)
	return &reviewResp, nil
}

func (s *reviewService) GetRestaurantReviews(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant reviews",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant reviews: %w", err)
	}

	// Resolve reviewer names
	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		username := ""
		user, _ := s.repo.User.FindByID(ctx, review.UserID)
		if user != nil {
			username = user.Username
		}

		reviewResponses[i] = response.ReviewToResponse(review, username)
	}

	s.log.Info("Restaurant reviews retrieved",
		zap.String("restaurant_id", restaurantID),
		zap.Int("count", len(reviews)),
	)

	return reviewResponses, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to look up review", zap.Error(err))
		return fmt.Errorf("look up review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	// Only the owner may delete
	if review.UserID != userUUID {
		return fmt.Errorf("%w to delete this review", ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
	)

	return nil
}
