package wire

import (
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All reservation routes require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/reservations - Book a table
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// GET /api/reservations - Caller's reservations
		r.Get("/api/reservations", reservationHandler.GetUserReservations)

		// DELETE /api/reservations/{id} - Cancel reservation (owner only)
		r.Delete("/api/reservations/{id}", reservationHandler.CancelReservation)
	})
}
