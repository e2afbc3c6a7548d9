package usecase

import (
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Restaurant  RestaurantService
	Reservation ReservationService
	Review      ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Restaurant:  NewRestaurantService(repo, log),
		Reservation: NewReservationService(repo, log),
		Review:      NewReviewService(repo, log),
	}
}
