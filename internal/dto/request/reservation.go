package request

type CreateReservationRequest struct {
	RestaurantID   string `json:"restaurant_id" validate:"required,uuid4"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	TableType      string `json:"table_type" validate:"required,oneof=twoSeater fourSeater"`
	NumberOfGuests int    `json:"number_of_guests" validate:"required,min=1,max=4"`
}
