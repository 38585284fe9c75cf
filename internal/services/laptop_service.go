package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/cache"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/metrics"
)

const (
	// laptopCacheKey is the single cache key the list read path operates on.
	laptopCacheKey = "laptop"
	// laptopCacheTTL bounds staleness of the cached list.
	laptopCacheTTL = 24 * time.Hour
)

// ListResult is the shape returned when the laptop list is served from the
// database.
type ListResult struct {
	Count int             `json:"count"`
	List  []models.Laptop `json:"list"`
}

// LaptopService orchestrates laptop reads and writes over a persistence
// gateway, optionally fronted by a cache-aside read path on List.
type LaptopService struct {
	store LaptopStore
	cache cache.Store // nil disables the cache-aside path
	log   *zap.Logger
}

// NewLaptopService builds a laptop service. Passing a nil cache store runs
// every List against the database.
func NewLaptopService(store LaptopStore, cacheStore cache.Store) (*LaptopService, error) {
	if store == nil {
		return nil, errors.New("laptop service: store is required")
	}
	return &LaptopService{
		store: store,
		cache: cacheStore,
		log:   logger.WithModule("laptop"),
	}, nil
}

// List returns the laptop list, consulting the cache first when one is
// configured. Cache backend failures degrade silently to a database read;
// the database stays the source of truth.
//
// The result is intentionally shape-asymmetric, matching the behaviour
// clients already depend on: a cache hit returns the bare list, a database
// read returns {count, list}.
func (s *LaptopService) List(ctx context.Context) (any, error) {
	if s.cache != nil {
		if list, ok := s.readCache(ctx); ok {
			if len(list) == 0 {
				// A stale empty entry should not normally occur; surface it
				// as not-found rather than an empty success.
				return nil, appErrors.NewNotFound("Laptop not found")
			}
			return list, nil
		}
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, appErrors.NewNotFound("Laptop not found")
	}

	if s.cache != nil {
		s.fillCache(ctx, list)
	}

	return ListResult{Count: len(list), List: list}, nil
}

// readCache attempts a cache lookup. Any backend or decode failure is logged
// and reported as a miss.
func (s *LaptopService) readCache(ctx context.Context) ([]models.Laptop, bool) {
	raw, found, err := s.cache.Get(ctx, laptopCacheKey)
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.log.Warn("cache read failed", zap.Error(err))
		return nil, false
	}
	if !found {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	var list []models.Laptop
	if err := json.Unmarshal(raw, &list); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.log.Warn("cache entry undecodable", zap.Error(err))
		return nil, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	s.log.Debug("laptop list served from cache", zap.String("key", laptopCacheKey))
	return list, true
}

// fillCache repopulates the cache after a miss. Failure to cache is logged
// and never propagated; concurrent fills race and the last writer wins.
func (s *LaptopService) fillCache(ctx context.Context, list []models.Laptop) {
	payload, err := json.Marshal(list)
	if err != nil {
		s.log.Warn("cache encode failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, laptopCacheKey, payload, laptopCacheTTL); err != nil {
		s.log.Warn("cache write failed", zap.Error(err))
	}
}

// Create inserts a laptop and returns the success message for the envelope.
func (s *LaptopService) Create(ctx context.Context, laptop models.Laptop) (string, error) {
	if err := s.store.Create(ctx, laptop); err != nil {
		return "", err
	}
	return fmt.Sprintf("Success adding %s to the database!", laptop.Name), nil
}

// Update replaces every field of the identified laptop. A missing id is a
// not-found outcome, not a failure.
func (s *LaptopService) Update(ctx context.Context, id uint, laptop models.Laptop) (string, error) {
	updated, err := s.store.Update(ctx, id, laptop)
	if err != nil {
		return "", err
	}
	if !updated {
		return "", appErrors.NewNotFound(fmt.Sprintf("Laptop with id %d not found", id))
	}
	return fmt.Sprintf("Edited id %d", id), nil
}

// Delete removes the identified laptop. Repeating a delete reports not-found.
func (s *LaptopService) Delete(ctx context.Context, id uint) (string, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", appErrors.NewNotFound(fmt.Sprintf("Laptop with id %d not found", id))
	}
	return fmt.Sprintf("Successfully Delete id %d", id), nil
}
