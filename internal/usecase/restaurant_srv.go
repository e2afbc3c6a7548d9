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

type RestaurantService interface {
	GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)
	CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	CheckAvailability(ctx context.Context, restaurantID string) (*response.AvailabilityResponse, error)
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get restaurants", zap.Error(err))
		return nil, fmt.Errorf("get restaurants: %w", err)
	}

	restaurantResponses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		restaurantResponses[i] = response.RestaurantToResponse(restaurant)
	}

	return restaurantResponses, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, restaurantID)
	}

	restaurantResp := response.RestaurantToResponse(restaurant)
	return &restaurantResp, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		TwoSeater:   entity.DefaultTwoSeaterCount,
		FourSeater:  entity.DefaultFourSeaterCount,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", req.Name),
	)

	restaurantResp := response.RestaurantToResponse(restaurant)
	return &restaurantResp, nil
}

func (s *restaurantService) CheckAvailability(ctx context.Context, restaurantID string) (*response.AvailabilityResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, restaurantID)
	}

	return &response.AvailabilityResponse{
		TwoSeater:  restaurant.TwoSeater,
		FourSeater: restaurant.FourSeater,
	}, nil
}
