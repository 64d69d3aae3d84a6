package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/velomad/rideplanner/internal/core/domain"
)

type ShopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) CreateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	query := `INSERT INTO coffeeshop (name, address, start_location, is_cyclist_friendly, notes)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		shop.Name,
		shop.Address,
		shop.StartLocation,
		shop.IsCyclistFriendly,
		shop.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting shop: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// re-read so the response carries exactly what was stored
	return r.GetShopByID(ctx, id)
}

func (r *ShopRepository) GetShopByID(ctx context.Context, shopID int64) (*domain.CoffeeShop, error) {
	query := `SELECT id, name, address, start_location, is_cyclist_friendly, notes
		FROM coffeeshop WHERE id = ?`

	shop := &domain.CoffeeShop{}
	var notes sql.NullString
	err := r.db.QueryRowContext(ctx, query, shopID).Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.StartLocation,
		&shop.IsCyclistFriendly,
		&notes,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		shop.Notes = &notes.String
	}
	return shop, nil
}

func (r *ShopRepository) ListShops(ctx context.Context) ([]*domain.CoffeeShop, error) {
	query := `SELECT id, name, address, start_location, is_cyclist_friendly, notes
		FROM coffeeshop`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []*domain.CoffeeShop

	for rows.Next() {
		shop := &domain.CoffeeShop{}
		var notes sql.NullString
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.Address,
			&shop.StartLocation,
			&shop.IsCyclistFriendly,
			&notes,
		)
		if err != nil {
			return nil, err
		}
		if notes.Valid {
			shop.Notes = &notes.String
		}
		shops = append(shops, shop)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopRepository) UpdateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	query := `UPDATE coffeeshop
		SET name = ?, address = ?, start_location = ?, is_cyclist_friendly = ?, notes = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		shop.Name,
		shop.Address,
		shop.StartLocation,
		shop.IsCyclistFriendly,
		shop.Notes,
		shop.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating shop: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, domain.ErrShopNotFound
	}

	return r.GetShopByID(ctx, shop.ID)
}

func (r *ShopRepository) DeleteShop(ctx context.Context, shopID int64) error {
	query := `DELETE FROM coffeeshop WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, shopID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrShopNotFound
	}

	return nil
}
