package domain

import (
	"time"
)

// swagger:model domain.GroupRide
type GroupRide struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title" validate:"required,max=120"`
	DateTime time.Time `json:"date_time" validate:"required"`
	// Pace is free text on purpose ("easy", "moderate", "fast"), no enumeration.
	Pace          string  `json:"pace" validate:"required"`
	DistanceKm    float64 `json:"distance_km"`
	StartLocation string  `json:"start_location" validate:"required,max=200"`
	// Optional link to a coffee shop. Existence is checked at write time in the
	// ride service, not by the storage layer.
	CoffeeShopID *int64  `json:"coffee_shop_id,omitempty"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
