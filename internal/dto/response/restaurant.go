package response

import (
	"time"

	"restaurant-reservation/internal/data/entity"
)

type RestaurantResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	Tables      AvailabilityResponse `json:"tables"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AvailabilityResponse carries the remaining table counts per type
type AvailabilityResponse struct {
	TwoSeater  int `json:"twoSeater"`
	FourSeater int `json:"fourSeater"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Description: restaurant.Description,
		Image:       restaurant.Image,
		Tables: AvailabilityResponse{
			TwoSeater:  restaurant.TwoSeater,
			FourSeater: restaurant.FourSeater,
		},
		CreatedAt: restaurant.CreatedAt,
	}
}
