package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/database/testutil"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// gatewayFixtures builds both laptop gateways over the same database so every
// contract test runs against the raw-SQL and the ORM implementation.
func gatewayFixtures(t *testing.T) map[string]LaptopStore {
	t.Helper()

	db := testutil.MustOpenTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	sqlStore, err := NewSQLLaptopStore(sqlDB, "laptop")
	require.NoError(t, err)
	gormStore, err := NewGormLaptopStore(db, "laptop")
	require.NoError(t, err)

	return map[string]LaptopStore{"sql": sqlStore, "gorm": gormStore}
}

func findLaptopID(t *testing.T, store LaptopStore, name string) uint {
	t.Helper()

	list, err := store.List(context.Background())
	require.NoError(t, err)
	for _, laptop := range list {
		if laptop.Name == name {
			return laptop.ID
		}
	}
	t.Fatalf("laptop %q not found", name)
	return 0
}

func TestLaptopGatewayCreateAndList(t *testing.T) {
	for name, store := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			laptop := models.Laptop{Name: "Thinkpad " + name, Price: 1500.50, Stock: 4, BrandID: 2}
			require.NoError(t, store.Create(ctx, laptop))

			list, err := store.List(ctx)
			require.NoError(t, err)

			var found bool
			for _, got := range list {
				if got.Name != laptop.Name {
					continue
				}
				found = true
				require.NotZero(t, got.ID)
				require.Equal(t, laptop.Price, got.Price)
				require.Equal(t, laptop.Stock, got.Stock)
				require.Equal(t, laptop.BrandID, got.BrandID)
			}
			require.True(t, found)
		})
	}
}

func TestLaptopGatewayListEmpty(t *testing.T) {
	for name, store := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			list, err := store.List(context.Background())
			require.NoError(t, err)
			require.NotNil(t, list)
			require.Empty(t, list)
		})
	}
}

func TestLaptopGatewayUpdate(t *testing.T) {
	for name, store := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Create(ctx, models.Laptop{Name: "Old " + name, Price: 100, Stock: 1, BrandID: 1}))
			id := findLaptopID(t, store, "Old "+name)

			updated, err := store.Update(ctx, id, models.Laptop{Name: "New " + name, Price: 200, Stock: 5, BrandID: 3})
			require.NoError(t, err)
			require.True(t, updated)

			list, err := store.List(ctx)
			require.NoError(t, err)
			for _, got := range list {
				if got.ID != id {
					continue
				}
				require.Equal(t, "New "+name, got.Name)
				require.Equal(t, float64(200), got.Price)
				require.Equal(t, 5, got.Stock)
				require.Equal(t, uint(3), got.BrandID)
			}
		})
	}
}

func TestLaptopGatewayUpdateMissingID(t *testing.T) {
	for name, store := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			updated, err := store.Update(context.Background(), 9999, models.Laptop{Name: "Ghost"})
			require.NoError(t, err)
			require.False(t, updated)
		})
	}
}

func TestLaptopGatewayDelete(t *testing.T) {
	for name, store := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Create(ctx, models.Laptop{Name: "Doomed " + name, Price: 1, Stock: 1, BrandID: 1}))
			id := findLaptopID(t, store, "Doomed "+name)

			deleted, err := store.Delete(ctx, id)
			require.NoError(t, err)
			require.True(t, deleted)

			// Repeating the delete is a clean not-found, never an error.
			deleted, err = store.Delete(ctx, id)
			require.NoError(t, err)
			require.False(t, deleted)
		})
	}
}

func TestLaptopGatewayRequiresDB(t *testing.T) {
	_, err := NewSQLLaptopStore(nil, "laptop")
	require.Error(t, err)

	_, err = NewGormLaptopStore(nil, "laptop")
	require.Error(t, err)
}
