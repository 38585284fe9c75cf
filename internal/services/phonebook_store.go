package services

import (
	"context"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// PhonebookStore abstracts phonebook persistence with the same boolean
// not-found contract as LaptopStore.
type PhonebookStore interface {
	List(ctx context.Context) ([]models.PhonebookEntry, error)
	Create(ctx context.Context, entry models.PhonebookEntry) error
	Update(ctx context.Context, id uint, entry models.PhonebookEntry) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
