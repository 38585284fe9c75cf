package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
)

// UserStore abstracts credential persistence. FindByUsername returns
// (nil, nil) when no such user exists.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SQLUserStore is the raw-SQL credential gateway.
type SQLUserStore struct {
	db    *sql.DB
	table string
	log   *zap.Logger
}

// NewSQLUserStore builds the credential gateway over the shared pool.
func NewSQLUserStore(db *sql.DB, table string) (*SQLUserStore, error) {
	if db == nil {
		return nil, errors.New("user store: db is required")
	}
	if table == "" {
		table = "user"
	}
	return &SQLUserStore{db: db, table: table, log: logger.WithModule("database")}, nil
}

func (s *SQLUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := fmt.Sprintf("SELECT id, username, password FROM %s WHERE username = ?", s.table)
	start := time.Now()
	row := conn.QueryRowContext(ctx, query, username)

	var user models.User
	err = row.Scan(&user.ID, &user.Username, &user.Password)
	s.logQuery(query, start, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLUserStore) Create(ctx context.Context, user *models.User) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	query := fmt.Sprintf("INSERT INTO %s (username, password, created_at, updated_at) VALUES (?,?,?,?)", s.table)
	now := time.Now()
	start := now
	_, err = conn.ExecContext(ctx, query, user.Username, user.Password, now, now)
	s.logQuery(query, start, err)
	return err
}

func (s *SQLUserStore) logQuery(query string, start time.Time, err error) {
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.log.Error("query failed", zap.String("query", query), zap.Error(err))
		return
	}
	s.log.Debug("query", zap.String("query", query), zap.Duration("duration", time.Since(start)))
}
