package wire

import (
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{restaurantId} - View restaurant reviews (public)
	r.Get("/api/reviews/{restaurantId}", reviewHandler.GetRestaurantReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/reviews - Create review (authenticated users only)
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// DELETE /api/reviews/{id} - Delete review (owner only)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
