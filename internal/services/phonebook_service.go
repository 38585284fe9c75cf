package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
)

// PhonebookListResult is the phonebook listing shape.
type PhonebookListResult struct {
	Count int                     `json:"count"`
	List  []models.PhonebookEntry `json:"list"`
}

// PhonebookService orchestrates phonebook CRUD over a persistence gateway.
// There is no cache on this resource.
type PhonebookService struct {
	store PhonebookStore
}

// NewPhonebookService builds a phonebook service.
func NewPhonebookService(store PhonebookStore) (*PhonebookService, error) {
	if store == nil {
		return nil, errors.New("phonebook service: store is required")
	}
	return &PhonebookService{store: store}, nil
}

// List returns every phonebook entry; an empty table is a not-found outcome.
func (s *PhonebookService) List(ctx context.Context) (PhonebookListResult, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return PhonebookListResult{}, err
	}
	if len(list) == 0 {
		return PhonebookListResult{}, appErrors.NewNotFound("Phonebook not found")
	}
	return PhonebookListResult{Count: len(list), List: list}, nil
}

// Create inserts an entry and returns the success message for the envelope.
func (s *PhonebookService) Create(ctx context.Context, entry models.PhonebookEntry) (string, error) {
	if err := s.store.Create(ctx, entry); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added '%s' as '%s' to phonebook", entry.Number, entry.Name), nil
}

// Update replaces the identified entry's fields.
func (s *PhonebookService) Update(ctx context.Context, id uint, entry models.PhonebookEntry) (string, error) {
	updated, err := s.store.Update(ctx, id, entry)
	if err != nil {
		return "", err
	}
	if !updated {
		return "", appErrors.NewNotFound(fmt.Sprintf("Phonebook with id %d not found", id))
	}
	return fmt.Sprintf("Edited '%s' as '%s' to phonebook", entry.Number, entry.Name), nil
}

// Delete removes the identified entry.
func (s *PhonebookService) Delete(ctx context.Context, id uint) (string, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", appErrors.NewNotFound(fmt.Sprintf("Phonebook with id %d not found", id))
	}
	return fmt.Sprintf("Delete id %d successfully", id), nil
}
