package entity

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	BaseSimple
	UserID         uuid.UUID `db:"user_id"`
	RestaurantID   uuid.UUID `db:"restaurant_id"`
	Date           time.Time `db:"date"`
	Time           string    `db:"time"`
	TableType      TableType `db:"table_type"`
	NumberOfGuests int       `db:"number_of_guests"` // 1-4
}
