package request

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
	Image       string `json:"image" validate:"required,url"`
}
