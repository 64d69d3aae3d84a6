package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type fakeShopRepo struct {
	shops map[int64]*domain.CoffeeShop
}

func (f *fakeShopRepo) CreateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	return shop, nil
}

func (f *fakeShopRepo) GetShopByID(ctx context.Context, shopID int64) (*domain.CoffeeShop, error) {
	shop, ok := f.shops[shopID]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	return shop, nil
}

func (f *fakeShopRepo) ListShops(ctx context.Context) ([]*domain.CoffeeShop, error) {
	return nil, nil
}

func (f *fakeShopRepo) UpdateShop(ctx context.Context, shop *domain.CoffeeShop) (*domain.CoffeeShop, error) {
	return shop, nil
}

func (f *fakeShopRepo) DeleteShop(ctx context.Context, shopID int64) error {
	return nil
}

type fakeRideRepo struct {
	lastFilter ports.RideFilter
	rides      []*domain.GroupRide
}

func (f *fakeRideRepo) CreateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	ride.ID = int64(len(f.rides) + 1)
	f.rides = append(f.rides, ride)
	return ride, nil
}

func (f *fakeRideRepo) GetRideByID(ctx context.Context, rideID int64) (*domain.GroupRide, error) {
	return nil, domain.ErrRideNotFound
}

func (f *fakeRideRepo) ListRides(ctx context.Context, filter ports.RideFilter) ([]*domain.GroupRide, error) {
	f.lastFilter = filter
	return f.rides, nil
}

func (f *fakeRideRepo) UpdateRide(ctx context.Context, ride *domain.GroupRide) (*domain.GroupRide, error) {
	return ride, nil
}

func (f *fakeRideRepo) DeleteRide(ctx context.Context, rideID int64) error {
	return nil
}

func newRideServiceWithShops(shops map[int64]*domain.CoffeeShop) (*RideService, *fakeRideRepo) {
	rideRepo := &fakeRideRepo{}
	svc := NewRideService(rideRepo, &fakeShopRepo{shops: shops}, noopLogger{}, NewValidator())
	return svc, rideRepo
}

func validRide() *domain.GroupRide {
	return &domain.GroupRide{
		Title:         "Evening Shakeout",
		DateTime:      time.Date(2025, 10, 5, 18, 30, 0, 0, time.UTC),
		Pace:          "easy",
		DistanceKm:    8.5,
		StartLocation: "Retiro Park main gate",
	}
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	from, to := dayBounds(day)

	if !from.Equal(day) {
		t.Errorf("from mismatch: got %v", from)
	}
	if !to.Equal(day.Add(24 * time.Hour)) {
		t.Errorf("to mismatch: got %v", to)
	}

	// a mid-day timestamp still maps onto the full day window
	from, to = dayBounds(time.Date(2025, 10, 5, 18, 30, 0, 0, time.UTC))
	if !from.Equal(day) || !to.Equal(day.Add(24*time.Hour)) {
		t.Errorf("mid-day bounds mismatch: [%v, %v)", from, to)
	}
}

func TestListRides_TranslatesOnDateToBounds(t *testing.T) {
	svc, rideRepo := newRideServiceWithShops(nil)

	day := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ListRides(context.Background(), "easy", &day); err != nil {
		t.Fatalf("ListRides failed: %v", err)
	}

	filter := rideRepo.lastFilter
	if filter.Pace != "easy" {
		t.Errorf("pace not forwarded: got %q", filter.Pace)
	}
	if filter.From == nil || !filter.From.Equal(day) {
		t.Errorf("From bound mismatch: got %v", filter.From)
	}
	if filter.To == nil || !filter.To.Equal(day.Add(24*time.Hour)) {
		t.Errorf("To bound mismatch: got %v", filter.To)
	}
}

func TestListRides_NoFiltersMeansNoBounds(t *testing.T) {
	svc, rideRepo := newRideServiceWithShops(nil)

	if _, err := svc.ListRides(context.Background(), "", nil); err != nil {
		t.Fatalf("ListRides failed: %v", err)
	}

	filter := rideRepo.lastFilter
	if filter.Pace != "" || filter.From != nil || filter.To != nil {
		t.Errorf("expected empty filter, got %+v", filter)
	}
}

func TestCreateRide_MissingShopReference(t *testing.T) {
	svc, _ := newRideServiceWithShops(map[int64]*domain.CoffeeShop{})

	ride := validRide()
	missing := int64(9999)
	ride.CoffeeShopID = &missing

	_, err := svc.CreateRide(context.Background(), ride)
	if !errors.Is(err, domain.ErrShopReference) {
		t.Fatalf("expected ErrShopReference, got %v", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error message should contain 'does not exist': %q", err.Error())
	}
	if !strings.Contains(err.Error(), "coffee_shop_id") {
		t.Errorf("error message should name the field: %q", err.Error())
	}
}

func TestCreateRide_ValidShopReference(t *testing.T) {
	svc, _ := newRideServiceWithShops(map[int64]*domain.CoffeeShop{
		1: {ID: 1, Name: "Federal Café", Address: "Plaza", StartLocation: "Lavapiés"},
	})

	ride := validRide()
	shopID := int64(1)
	ride.CoffeeShopID = &shopID

	created, err := svc.CreateRide(context.Background(), ride)
	if err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}
}

func TestCreateRide_NoShopReference(t *testing.T) {
	svc, _ := newRideServiceWithShops(nil)

	if _, err := svc.CreateRide(context.Background(), validRide()); err != nil {
		t.Fatalf("CreateRide without coffee_shop_id failed: %v", err)
	}
}

func TestUpdateRide_MissingShopReference(t *testing.T) {
	svc, _ := newRideServiceWithShops(map[int64]*domain.CoffeeShop{})

	ride := validRide()
	ride.ID = 1
	missing := int64(17)
	ride.CoffeeShopID = &missing

	_, err := svc.UpdateRide(context.Background(), ride)
	if !errors.Is(err, domain.ErrShopReference) {
		t.Fatalf("expected ErrShopReference, got %v", err)
	}
}

func TestCreateRide_ValidationFailure(t *testing.T) {
	svc, _ := newRideServiceWithShops(nil)

	ride := validRide()
	ride.Title = ""

	if _, err := svc.CreateRide(context.Background(), ride); err == nil {
		t.Fatal("expected validation error for empty title")
	}
}

func TestCreateRide_NegativeDistanceAllowed(t *testing.T) {
	svc, _ := newRideServiceWithShops(nil)

	ride := validRide()
	ride.DistanceKm = -5

	if _, err := svc.CreateRide(context.Background(), ride); err != nil {
		t.Fatalf("negative distance should be accepted: %v", err)
	}
}
