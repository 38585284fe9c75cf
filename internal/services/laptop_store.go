package services

import (
	"context"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// LaptopStore abstracts laptop persistence. Two implementations exist: a
// raw-SQL gateway running parameterized queries against the pool, and a
// gorm-backed gateway. Update and Delete report a missing id as (false, nil);
// callers translate that into a not-found response, never a server error.
type LaptopStore interface {
	List(ctx context.Context) ([]models.Laptop, error)
	Create(ctx context.Context, laptop models.Laptop) error
	Update(ctx context.Context, id uint, laptop models.Laptop) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
