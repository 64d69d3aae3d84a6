package services

import (
	"context"
	"fmt"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type ShopService struct {
	shopRepo ports.ShopRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewShopService(
	shopRepo ports.ShopRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *ShopService) CreateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	if err := s.validate.Struct(shop); err != nil {
		s.logger.Error("Shop validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	createdShop, err := s.shopRepo.CreateShop(ctx, shop)
	if err != nil {
		s.logger.Error("Failed to create shop", map[string]interface{}{
			"error": err.Error(),
			"name":  shop.Name,
		})
		return nil, err
	}

	s.logger.Info("Shop created successfully", map[string]interface{}{
		"shop_id": createdShop.ID,
		"name":    createdShop.Name,
	})

	return createdShop, nil
}

func (s *ShopService) GetShopByID(ctx context.Context, shopID int64) (*domain.CoffeeShop, error) {
	shop, err := s.shopRepo.GetShopByID(ctx, shopID)
	if err != nil {
		s.logger.Error("Failed to get shop", map[string]interface{}{
			"error":   err.Error(),
			"shop_id": shopID,
		})
		return nil, err
	}

	return shop, nil
}

func (s *ShopService) ListShops(ctx context.Context) ([]*domain.CoffeeShop, error) {
	shops, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		s.logger.Error("Failed to list shops", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved shops", map[string]interface{}{
		"shops_count": len(shops),
	})

	return shops, nil
}

func (s *ShopService) UpdateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	if err := s.validate.Struct(shop); err != nil {
		s.logger.Error("Shop validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updatedShop, err := s.shopRepo.UpdateShop(ctx, shop)
	if err != nil {
		s.logger.Error("Failed to update shop", map[string]interface{}{
			"error":   err.Error(),
			"shop_id": shop.ID,
		})
		return nil, err
	}

	s.logger.Info("Shop updated successfully", map[string]interface{}{
		"shop_id": shop.ID,
	})

	return updatedShop, nil
}

// DeleteShop removes a shop. Rides referencing the shop are left untouched:
// the reference is only checked when a ride is written, so a delete can
// leave rides pointing at a missing shop.
func (s *ShopService) DeleteShop(ctx context.Context, shopID int64) error {
	err := s.shopRepo.DeleteShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Failed to delete shop", map[string]interface{}{
			"error":   err.Error(),
			"shop_id": shopID,
		})
		return err
	}

	s.logger.Info("Shop deleted successfully", map[string]interface{}{
		"shop_id": shopID,
	})

	return nil
}
