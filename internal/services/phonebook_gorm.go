package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// GormPhonebookStore is the ORM-backed phonebook gateway.
type GormPhonebookStore struct {
	db    *gorm.DB
	table string
}

// NewGormPhonebookStore builds the ORM gateway.
func NewGormPhonebookStore(db *gorm.DB, table string) (*GormPhonebookStore, error) {
	if db == nil {
		return nil, errors.New("phonebook store: db is required")
	}
	if table == "" {
		table = "phonebook"
	}
	return &GormPhonebookStore{db: db, table: table}, nil
}

func (s *GormPhonebookStore) List(ctx context.Context) ([]models.PhonebookEntry, error) {
	entries := make([]models.PhonebookEntry, 0)
	err := s.db.WithContext(ctx).Table(s.table).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormPhonebookStore) Create(ctx context.Context, entry models.PhonebookEntry) error {
	entry.ID = 0
	return s.db.WithContext(ctx).Table(s.table).Create(&entry).Error
}

func (s *GormPhonebookStore) Update(ctx context.Context, id uint, entry models.PhonebookEntry) (bool, error) {
	result := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":   entry.Name,
			"number": entry.Number,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormPhonebookStore) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Table(s.table).
		Where("id = ?", id).
		Delete(&models.PhonebookEntry{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
