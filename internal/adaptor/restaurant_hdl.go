package adaptor

import (
	"encoding/json"
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// GetRestaurants handles GET /api/restaurants (public)
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetRestaurants(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetRestaurantByID handles GET /api/restaurants/{id} (public)
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// CreateRestaurant handles POST /api/restaurants (admin)
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "success", restaurant)
}

// CheckAvailability handles GET /api/restaurants/{id}/availability (public)
func (h *RestaurantHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
