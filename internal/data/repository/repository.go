package repository

import (
	"restaurant-reservation/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Restaurant  RestaurantRepository
	Reservation ReservationRepository
	Review      ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Restaurant:  NewRestaurantRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Review:      NewReviewRepository(db, log),
	}
}
