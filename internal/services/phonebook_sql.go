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

// SQLPhonebookStore is the raw-SQL phonebook gateway.
type SQLPhonebookStore struct {
	db    *sql.DB
	table string
	log   *zap.Logger
}

// NewSQLPhonebookStore builds the raw-SQL gateway over the shared pool.
func NewSQLPhonebookStore(db *sql.DB, table string) (*SQLPhonebookStore, error) {
	if db == nil {
		return nil, errors.New("phonebook store: db is required")
	}
	if table == "" {
		table = "phonebook"
	}
	return &SQLPhonebookStore{db: db, table: table, log: logger.WithModule("database")}, nil
}

func (s *SQLPhonebookStore) List(ctx context.Context) ([]models.PhonebookEntry, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := fmt.Sprintf("SELECT id, name, number FROM %s", s.table)
	start := time.Now()
	rows, err := conn.QueryContext(ctx, query)
	s.logQuery(query, start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.PhonebookEntry, 0)
	for rows.Next() {
		var entry models.PhonebookEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Number); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SQLPhonebookStore) Create(ctx context.Context, entry models.PhonebookEntry) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	query := fmt.Sprintf("INSERT INTO %s (name, number) VALUES (?,?)", s.table)
	start := time.Now()
	_, err = conn.ExecContext(ctx, query, entry.Name, entry.Number)
	s.logQuery(query, start, err)
	return err
}

func (s *SQLPhonebookStore) Update(ctx context.Context, id uint, entry models.PhonebookEntry) (bool, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	query := fmt.Sprintf("UPDATE %s SET name = ?, number = ? WHERE id = ?", s.table)
	start := time.Now()
	result, err := conn.ExecContext(ctx, query, entry.Name, entry.Number, id)
	s.logQuery(query, start, err)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQLPhonebookStore) Delete(ctx context.Context, id uint) (bool, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table)
	start := time.Now()
	result, err := conn.ExecContext(ctx, query, id)
	s.logQuery(query, start, err)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQLPhonebookStore) logQuery(query string, start time.Time, err error) {
	if err != nil {
		s.log.Error("query failed", zap.String("query", query), zap.Error(err))
		return
	}
	s.log.Debug("query", zap.String("query", query), zap.Duration("duration", time.Since(start)))
}
