package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/velomad/rideplanner/internal/core/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string {
	return &s
}

func TestOpen_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	db.Close()

	// second open against the same file must not fail on existing tables
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	db.Close()
}

func TestCreateAndGetShop(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateShop(ctx, &domain.CoffeeShop{
		Name:              "La Bicicleta Café",
		Address:           "Plaza de San Ildefonso, Madrid",
		StartLocation:     "Malasaña - plaza corner",
		IsCyclistFriendly: true,
		Notes:             strPtr("Big tables."),
	})
	if err != nil {
		t.Fatalf("CreateShop failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}

	got, err := repo.GetShopByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetShopByID failed: %v", err)
	}
	if got.Name != "La Bicicleta Café" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if got.Notes == nil || *got.Notes != "Big tables." {
		t.Errorf("Notes mismatch: got %v", got.Notes)
	}
	if !got.IsCyclistFriendly {
		t.Error("IsCyclistFriendly should be true")
	}
}

func TestCreateShop_NilNotes(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateShop(ctx, &domain.CoffeeShop{
		Name:          "Minimal",
		Address:       "Somewhere 1",
		StartLocation: "Corner",
	})
	if err != nil {
		t.Fatalf("CreateShop failed: %v", err)
	}
	if created.Notes != nil {
		t.Errorf("expected nil notes, got %q", *created.Notes)
	}
}

func TestListShops(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))
	ctx := context.Background()

	ids := map[int64]bool{}
	for _, name := range []string{"One", "Two", "Three"} {
		shop, err := repo.CreateShop(ctx, &domain.CoffeeShop{
			Name:          name,
			Address:       "Addr",
			StartLocation: "Loc",
		})
		if err != nil {
			t.Fatalf("CreateShop failed: %v", err)
		}
		ids[shop.ID] = false
	}

	shops, err := repo.ListShops(ctx)
	if err != nil {
		t.Fatalf("ListShops failed: %v", err)
	}
	if len(shops) != 3 {
		t.Fatalf("expected 3 shops, got %d", len(shops))
	}
	for _, shop := range shops {
		ids[shop.ID] = true
	}
	for id, seen := range ids {
		if !seen {
			t.Errorf("shop %d missing from list", id)
		}
	}
}

func TestUpdateShop(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateShop(ctx, &domain.CoffeeShop{
		Name:              "Before",
		Address:           "Addr",
		StartLocation:     "Loc",
		IsCyclistFriendly: true,
	})
	if err != nil {
		t.Fatalf("CreateShop failed: %v", err)
	}

	created.Name = "After"
	created.IsCyclistFriendly = false
	updated, err := repo.UpdateShop(ctx, created)
	if err != nil {
		t.Fatalf("UpdateShop failed: %v", err)
	}
	if updated.Name != "After" {
		t.Errorf("Name not updated: got %q", updated.Name)
	}
	if updated.IsCyclistFriendly {
		t.Error("IsCyclistFriendly not updated")
	}
}

func TestUpdateShop_NotFound(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))

	_, err := repo.UpdateShop(context.Background(), &domain.CoffeeShop{
		ID:            9999,
		Name:          "Ghost",
		Address:       "Addr",
		StartLocation: "Loc",
	})
	if !errors.Is(err, domain.ErrShopNotFound) {
		t.Errorf("expected ErrShopNotFound, got %v", err)
	}
}

func TestDeleteShop(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateShop(ctx, &domain.CoffeeShop{
		Name:          "Doomed",
		Address:       "Addr",
		StartLocation: "Loc",
	})
	if err != nil {
		t.Fatalf("CreateShop failed: %v", err)
	}

	if err := repo.DeleteShop(ctx, created.ID); err != nil {
		t.Fatalf("DeleteShop failed: %v", err)
	}

	_, err = repo.GetShopByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrShopNotFound) {
		t.Errorf("expected ErrShopNotFound after delete, got %v", err)
	}

	if err := repo.DeleteShop(ctx, created.ID); !errors.Is(err, domain.ErrShopNotFound) {
		t.Errorf("expected ErrShopNotFound on second delete, got %v", err)
	}
}

func TestGetShopByID_NotFound(t *testing.T) {
	repo := NewShopRepository(newTestDB(t))

	_, err := repo.GetShopByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrShopNotFound) {
		t.Errorf("expected ErrShopNotFound, got %v", err)
	}
}
