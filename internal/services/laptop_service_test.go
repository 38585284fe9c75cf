package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
)

type stubLaptopStore struct {
	laptops   []models.Laptop
	listCalls int
	listErr   error
	createErr error
	updated   bool
	deleted   bool
	opErr     error
}

func (s *stubLaptopStore) List(ctx context.Context) ([]models.Laptop, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.laptops, nil
}

func (s *stubLaptopStore) Create(ctx context.Context, laptop models.Laptop) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.laptops = append(s.laptops, laptop)
	return nil
}

func (s *stubLaptopStore) Update(ctx context.Context, id uint, laptop models.Laptop) (bool, error) {
	return s.updated, s.opErr
}

func (s *stubLaptopStore) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleted, s.opErr
}

type memoryCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	value, found := c.entries[key]
	return value, found, nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func sampleLaptops() []models.Laptop {
	return []models.Laptop{
		{ID: 1, Name: "Thinkpad X1", Price: 1500, Stock: 4, BrandID: 1},
		{ID: 2, Name: "Macbook Air", Price: 1200, Stock: 2, BrandID: 2},
	}
}

func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.StatusCode)
	require.Equal(t, message, appErr.Message)
}

func TestNewLaptopServiceRequiresStore(t *testing.T) {
	_, err := NewLaptopService(nil, nil)
	require.Error(t, err)
}

func TestListMissFillsCacheAndReturnsCountedShape(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	cacheStore := newMemoryCache()
	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)

	counted, ok := result.(ListResult)
	require.True(t, ok)
	require.Equal(t, 2, counted.Count)
	require.Equal(t, store.laptops, counted.List)

	expected, err := json.Marshal(store.laptops)
	require.NoError(t, err)
	require.Equal(t, expected, cacheStore.entries["laptop"])
}

func TestListHitSkipsDatabaseAndReturnsBareList(t *testing.T) {
	store := &stubLaptopStore{listErr: errors.New("database must not be touched")}
	cacheStore := newMemoryCache()

	payload, err := json.Marshal(sampleLaptops())
	require.NoError(t, err)
	cacheStore.entries["laptop"] = payload

	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Zero(t, store.listCalls)

	list, ok := result.([]models.Laptop)
	require.True(t, ok)
	require.Equal(t, sampleLaptops(), list)
}

func TestListCachedEmptyListIsNotFoundWithoutDatabaseRead(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	cacheStore := newMemoryCache()
	cacheStore.entries["laptop"] = []byte("[]")

	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	requireNotFound(t, err, "Laptop not found")
	require.Zero(t, store.listCalls)
}

func TestListEmptyDatabaseIsNotFoundAndNotCached(t *testing.T) {
	store := &stubLaptopStore{}
	cacheStore := newMemoryCache()
	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	requireNotFound(t, err, "Laptop not found")
	require.Zero(t, cacheStore.sets)
	require.NotContains(t, cacheStore.entries, "laptop")
}

func TestListCacheGetFailureFallsBackToDatabase(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	cacheStore := newMemoryCache()
	cacheStore.getErr = errors.New("redis down")

	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)
	require.IsType(t, ListResult{}, result)
}

func TestListCacheSetFailureStillSucceeds(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	cacheStore := newMemoryCache()
	cacheStore.setErr = errors.New("redis down")

	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.IsType(t, ListResult{}, result)
}

func TestListUndecodableCacheEntryFallsBackToDatabase(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	cacheStore := newMemoryCache()
	cacheStore.entries["laptop"] = []byte("{not json")

	svc, err := NewLaptopService(store, cacheStore)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)
	require.IsType(t, ListResult{}, result)
}

func TestListWithoutCacheAlwaysReadsDatabase(t *testing.T) {
	store := &stubLaptopStore{laptops: sampleLaptops()}
	svc, err := NewLaptopService(store, nil)
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, store.listCalls)
}

func TestCreateMessage(t *testing.T) {
	store := &stubLaptopStore{}
	svc, err := NewLaptopService(store, nil)
	require.NoError(t, err)

	msg, err := svc.Create(context.Background(), models.Laptop{Name: "Thinkpad X1"})
	require.NoError(t, err)
	require.Equal(t, "Success adding Thinkpad X1 to the database!", msg)
	require.Len(t, store.laptops, 1)
}

func TestCreatePropagatesStoreError(t *testing.T) {
	store := &stubLaptopStore{createErr: errors.New("insert failed")}
	svc, err := NewLaptopService(store, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.Laptop{Name: "Thinkpad X1"})
	require.Error(t, err)
}

func TestUpdateOutcomes(t *testing.T) {
	svc, err := NewLaptopService(&stubLaptopStore{updated: true}, nil)
	require.NoError(t, err)

	msg, err := svc.Update(context.Background(), 3, models.Laptop{Name: "Thinkpad X1"})
	require.NoError(t, err)
	require.Equal(t, "Edited id 3", msg)

	svc, err = NewLaptopService(&stubLaptopStore{updated: false}, nil)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 99, models.Laptop{Name: "Thinkpad X1"})
	requireNotFound(t, err, "Laptop with id 99 not found")
}

func TestDeleteOutcomes(t *testing.T) {
	svc, err := NewLaptopService(&stubLaptopStore{deleted: true}, nil)
	require.NoError(t, err)

	msg, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "Successfully Delete id 3", msg)

	svc, err = NewLaptopService(&stubLaptopStore{deleted: false}, nil)
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), 3)
	requireNotFound(t, err, "Laptop with id 3 not found")
}
