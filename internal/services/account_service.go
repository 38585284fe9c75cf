package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/crypto"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/metrics"
)

// AccountService authenticates and registers credential records.
type AccountService struct {
	store UserStore
	log   *zap.Logger
}

// NewAccountService builds an account service over the credential gateway.
func NewAccountService(store UserStore) (*AccountService, error) {
	if store == nil {
		return nil, errors.New("account service: store is required")
	}
	return &AccountService{store: store, log: logger.WithModule("account")}, nil
}

// Login verifies the username/password pair. An unknown username and a wrong
// password are indistinguishable to the caller: both yield a 404 so the API
// never confirms which usernames exist.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil || !crypto.VerifyPassword(user.Password, password) {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		return nil, appErrors.NewNotFound("Invalid username or password")
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	s.log.Debug("login", zap.String("username", username))
	return user, nil
}

// Register stores a new credential record with a bcrypt password hash.
func (s *AccountService) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{Username: username, Password: hash}
	if err := s.store.Create(ctx, user); err != nil {
		return "", err
	}

	return "Register success", nil
}
