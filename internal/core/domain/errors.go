package domain

import "errors"

var (
	ErrShopNotFound = errors.New("shop not found")
	ErrRideNotFound = errors.New("ride not found")
	// ErrShopReference is returned when a ride payload carries a
	// coffee_shop_id that resolves to no stored shop. Distinct from
	// ErrShopNotFound because it pertains to a body field, not a path id.
	ErrShopReference = errors.New("coffee shop does not exist")
)
