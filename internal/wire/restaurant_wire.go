package wire

import (
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/restaurants - List restaurants (public)
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)

	// GET /api/restaurants/{id} - Restaurant details (public)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)

	// GET /api/restaurants/{id}/availability - Table availability (public)
	r.Get("/api/restaurants/{id}/availability", restaurantHandler.CheckAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/restaurants - Create restaurant (admin only)
		r.Post("/api/restaurants", restaurantHandler.CreateRestaurant)
	})
}
