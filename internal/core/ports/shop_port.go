package ports

import (
	"context"

	"github.com/velomad/rideplanner/internal/core/domain"
)

type ShopRepository interface {
	CreateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error)
	GetShopByID(ctx context.Context, shopID int64) (*domain.CoffeeShop, error)
	ListShops(ctx context.Context) ([]*domain.CoffeeShop, error)
	UpdateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error)
	DeleteShop(ctx context.Context, shopID int64) error
}

type ShopService interface {
	CreateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error)
	GetShopByID(ctx context.Context, shopID int64) (*domain.CoffeeShop, error)
	ListShops(ctx context.Context) ([]*domain.CoffeeShop, error)
	UpdateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error)
	DeleteShop(ctx context.Context, shopID int64) error
}
