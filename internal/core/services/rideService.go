package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type RideService struct {
	rideRepo ports.RideRepository
	shopRepo ports.ShopRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewRideService(
	rideRepo ports.RideRepository,
	shopRepo ports.ShopRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *RideService {
	return &RideService{
		rideRepo: rideRepo,
		shopRepo: shopRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *RideService) CreateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	if err := s.validate.Struct(ride); err != nil {
		s.logger.Error("Ride validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.checkShopReference(ctx, ride.CoffeeShopID); err != nil {
		return nil, err
	}

	createdRide, err := s.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		s.logger.Error("Failed to create ride", map[string]interface{}{
			"error": err.Error(),
			"title": ride.Title,
		})
		return nil, err
	}

	s.logger.Info("Ride created successfully", map[string]interface{}{
		"ride_id": createdRide.ID,
		"title":   createdRide.Title,
	})

	return createdRide, nil
}

func (s *RideService) GetRideByID(ctx context.Context, rideID int64) (*domain.GroupRide, error) {
	ride, err := s.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		s.logger.Error("Failed to get ride", map[string]interface{}{
			"error":   err.Error(),
			"ride_id": rideID,
		})
		return nil, err
	}

	return ride, nil
}

// ListRides returns rides matching the optional filters. onDate is a calendar
// day; it is translated into explicit [start, start+24h) bounds here so the
// repository compares the stored timestamp against the bounds instead of
// extracting a date component inside the query.
func (s *RideService) ListRides(ctx context.Context, pace string, onDate *time.Time) ([]*domain.GroupRide, error) {
	filter := ports.RideFilter{Pace: pace}
	if onDate != nil {
		from, to := dayBounds(*onDate)
		filter.From = &from
		filter.To = &to
	}

	rides, err := s.rideRepo.ListRides(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list rides", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved rides", map[string]interface{}{
		"rides_count": len(rides),
		"pace":        pace,
	})

	return rides, nil
}

func (s *RideService) UpdateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	if err := s.validate.Struct(ride); err != nil {
		s.logger.Error("Ride validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.checkShopReference(ctx, ride.CoffeeShopID); err != nil {
		return nil, err
	}

	updatedRide, err := s.rideRepo.UpdateRide(ctx, ride)
	if err != nil {
		s.logger.Error("Failed to update ride", map[string]interface{}{
			"error":   err.Error(),
			"ride_id": ride.ID,
		})
		return nil, err
	}

	s.logger.Info("Ride updated successfully", map[string]interface{}{
		"ride_id": ride.ID,
	})

	return updatedRide, nil
}

func (s *RideService) DeleteRide(ctx context.Context, rideID int64) error {
	err := s.rideRepo.DeleteRide(ctx, rideID)
	if err != nil {
		s.logger.Error("Failed to delete ride", map[string]interface{}{
			"error":   err.Error(),
			"ride_id": rideID,
		})
		return err
	}

	s.logger.Info("Ride deleted successfully", map[string]interface{}{
		"ride_id": rideID,
	})

	return nil
}

// checkShopReference is the single coffee_shop_id existence check shared by
// create and update. A nil id is fine; a non-nil id must resolve to a stored
// shop before any ride write happens.
func (s *RideService) checkShopReference(ctx context.Context, shopID *int64) error {
	if shopID == nil {
		return nil
	}

	_, err := s.shopRepo.GetShopByID(ctx, *shopID)
	if errors.Is(err, domain.ErrShopNotFound) {
		s.logger.Warn("Ride references missing coffee shop", map[string]interface{}{
			"coffee_shop_id": *shopID,
		})
		return fmt.Errorf("coffee_shop_id %d: %w", *shopID, domain.ErrShopReference)
	}
	if err != nil {
		return err
	}
	return nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}
