package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/cache"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/database/testutil"
)

func TestDatabaseStoreSetGet(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "laptop", []byte(`[{"id":1}]`), time.Minute))

	value, found, err := store.Get(ctx, "laptop")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestDatabaseStoreGetMissing(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))

	_, found, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDatabaseStoreSetOverwrites(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "laptop", []byte("first"), time.Minute))
	require.NoError(t, store.Set(ctx, "laptop", []byte("second"), time.Minute))

	value, found, err := store.Get(ctx, "laptop")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("second"), value)
}

func TestDatabaseStoreExpiry(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "laptop", []byte("stale"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, found, err := store.Get(ctx, "laptop")
	require.NoError(t, err)
	require.False(t, found)

	// The expired row is purged, not merely hidden.
	_, found, err = store.Get(ctx, "laptop")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDatabaseStoreDelete(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "laptop", []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, "phonebook", []byte("b"), time.Minute))

	require.NoError(t, store.Delete(ctx, "laptop", "missing"))

	_, found, err := store.Get(ctx, "laptop")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = store.Get(ctx, "phonebook")
	require.NoError(t, err)
	require.True(t, found)
}

func TestDatabaseStoreDeleteNoKeys(t *testing.T) {
	store := cache.NewDatabaseStore(testutil.MustOpenTestDB(t))
	require.NoError(t, store.Delete(context.Background()))
}
