package domain

// swagger:model domain.CoffeeShop
type CoffeeShop struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=200"`
	// Human-friendly landmark or meeting point ("Retiro main gate"), not coordinates.
	StartLocation     string  `json:"start_location" validate:"required,max=200"`
	IsCyclistFriendly bool    `json:"is_cyclist_friendly"`
	Notes             *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
