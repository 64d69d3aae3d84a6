package ports

import (
	"context"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
)

// RideFilter narrows ListRides results. Zero values impose no constraint.
// From/To are explicit bounds; rides match when From <= date_time < To.
type RideFilter struct {
	Pace string
	From *time.Time
	To   *time.Time
}

type RideRepository interface {
	CreateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error)
	GetRideByID(ctx context.Context, rideID int64) (*domain.GroupRide, error)
	ListRides(ctx context.Context, filter RideFilter) ([]*domain.GroupRide, error)
	UpdateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error)
	DeleteRide(ctx context.Context, rideID int64) error
}

type RideService interface {
	CreateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error)
	GetRideByID(ctx context.Context, rideID int64) (*domain.GroupRide, error)
	ListRides(ctx context.Context, pace string, onDate *time.Time) ([]*domain.GroupRide, error)
	UpdateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error)
	DeleteRide(ctx context.Context, rideID int64) error
}
