package response

import (
	"time"

	"restaurant-reservation/internal/data/entity"
)

type ReservationResponse struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	TableType      string    `json:"table_type"`
	NumberOfGuests int       `json:"number_of_guests"`
	CreatedAt      time.Time `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation, restaurantName string) ReservationResponse {
	return ReservationResponse{
		ID:             reservation.ID.String(),
		RestaurantID:   reservation.RestaurantID.String(),
		RestaurantName: restaurantName,
		Date:           reservation.Date.Format("2006-01-02"),
		Time:           reservation.Time,
		TableType:      string(reservation.TableType),
		NumberOfGuests: reservation.NumberOfGuests,
		CreatedAt:      reservation.CreatedAt,
	}
}
