package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"
)

// RideRepository persists group rides. date_time is stored as unix seconds so
// the on_date filter stays a plain numeric range comparison that sqlite can
// evaluate on the column directly.
type RideRepository struct {
	db *sql.DB
}

func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{db: db}
}

func (r *RideRepository) CreateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	query := `INSERT INTO groupride (title, date_time, pace, distance_km, start_location, coffee_shop_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		ride.Title,
		ride.DateTime.Unix(),
		ride.Pace,
		ride.DistanceKm,
		ride.StartLocation,
		ride.CoffeeShopID,
		ride.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting ride: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetRideByID(ctx, id)
}

func (r *RideRepository) GetRideByID(ctx context.Context, rideID int64) (*domain.GroupRide, error) {
	query := `SELECT id, title, date_time, pace, distance_km, start_location, coffee_shop_id, notes
		FROM groupride WHERE id = ?`

	ride, err := scanRide(r.db.QueryRowContext(ctx, query, rideID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrRideNotFound
	}
	if err != nil {
		return nil, err
	}
	return ride, nil
}

func (r *RideRepository) ListRides(ctx context.Context, filter ports.RideFilter) ([]*domain.GroupRide, error) {
	query := `SELECT id, title, date_time, pace, distance_km, start_location, coffee_shop_id, notes
		FROM groupride WHERE 1=1`
	args := []interface{}{}

	if filter.Pace != "" {
		query += " AND pace = ?"
		args = append(args, filter.Pace)
	}
	if filter.From != nil {
		query += " AND date_time >= ?"
		args = append(args, filter.From.Unix())
	}
	if filter.To != nil {
		query += " AND date_time < ?"
		args = append(args, filter.To.Unix())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.GroupRide

	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rides, nil
}

func (r *RideRepository) UpdateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	query := `UPDATE groupride
		SET title = ?, date_time = ?, pace = ?, distance_km = ?, start_location = ?, coffee_shop_id = ?, notes = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		ride.Title,
		ride.DateTime.Unix(),
		ride.Pace,
		ride.DistanceKm,
		ride.StartLocation,
		ride.CoffeeShopID,
		ride.Notes,
		ride.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating ride: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, domain.ErrRideNotFound
	}

	return r.GetRideByID(ctx, ride.ID)
}

func (r *RideRepository) DeleteRide(ctx context.Context, rideID int64) error {
	query := `DELETE FROM groupride WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, rideID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrRideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRide(row rowScanner) (*domain.GroupRide, error) {
	ride := &domain.GroupRide{}
	var dateTime int64
	var coffeeShopID sql.NullInt64
	var notes sql.NullString

	err := row.Scan(
		&ride.ID,
		&ride.Title,
		&dateTime,
		&ride.Pace,
		&ride.DistanceKm,
		&ride.StartLocation,
		&coffeeShopID,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	ride.DateTime = time.Unix(dateTime, 0).UTC()
	if coffeeShopID.Valid {
		ride.CoffeeShopID = &coffeeShopID.Int64
	}
	if notes.Valid {
		ride.Notes = &notes.String
	}
	return ride, nil
}
