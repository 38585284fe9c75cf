package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// GormLaptopStore is the ORM-backed laptop gateway. It normalises the ORM's
// record-not-found signal to the boolean contract shared with the raw-SQL
// gateway.
type GormLaptopStore struct {
	db    *gorm.DB
	table string
}

// NewGormLaptopStore builds the ORM gateway.
func NewGormLaptopStore(db *gorm.DB, table string) (*GormLaptopStore, error) {
	if db == nil {
		return nil, errors.New("laptop store: db is required")
	}
	if table == "" {
		table = "laptop"
	}
	return &GormLaptopStore{db: db, table: table}, nil
}

func (s *GormLaptopStore) List(ctx context.Context) ([]models.Laptop, error) {
	laptops := make([]models.Laptop, 0)
	err := s.db.WithContext(ctx).Table(s.table).Find(&laptops).Error
	if err != nil {
		return nil, err
	}
	return laptops, nil
}

func (s *GormLaptopStore) Create(ctx context.Context, laptop models.Laptop) error {
	laptop.ID = 0
	return s.db.WithContext(ctx).Table(s.table).Create(&laptop).Error
}

func (s *GormLaptopStore) Update(ctx context.Context, id uint, laptop models.Laptop) (bool, error) {
	result := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":     laptop.Name,
			"price":    laptop.Price,
			"stock":    laptop.Stock,
			"brand_id": laptop.BrandID,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormLaptopStore) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Delete(&models.Laptop{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
