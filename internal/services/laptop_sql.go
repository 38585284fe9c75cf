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

// SQLLaptopStore is the raw-SQL laptop gateway. Every operation checks a
// connection out of the pool and releases it on all exit paths. User-supplied
// values are always bound parameters; only the configured table name is
// interpolated into query text.
type SQLLaptopStore struct {
	db    *sql.DB
	table string
	log   *zap.Logger
}

// NewSQLLaptopStore builds the raw-SQL gateway over the shared pool.
func NewSQLLaptopStore(db *sql.DB, table string) (*SQLLaptopStore, error) {
	if db == nil {
		return nil, errors.New("laptop store: db is required")
	}
	if table == "" {
		table = "laptop"
	}
	return &SQLLaptopStore{db: db, table: table, log: logger.WithModule("database")}, nil
}

func (s *SQLLaptopStore) List(ctx context.Context) ([]models.Laptop, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := fmt.Sprintf("SELECT id, name, price, stock, brand_id FROM %s", s.table)
	start := time.Now()
	rows, err := conn.QueryContext(ctx, query)
	s.logQuery(query, start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	laptops := make([]models.Laptop, 0)
	for rows.Next() {
		var laptop models.Laptop
		if err := rows.Scan(&laptop.ID, &laptop.Name, &laptop.Price, &laptop.Stock, &laptop.BrandID); err != nil {
			return nil, err
		}
		laptops = append(laptops, laptop)
	}

	return laptops, rows.Err()
}

func (s *SQLLaptopStore) Create(ctx context.Context, laptop models.Laptop) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	query := fmt.Sprintf("INSERT INTO %s (name, price, stock, brand_id) VALUES (?,?,?,?)", s.table)
	start := time.Now()
	_, err = conn.ExecContext(ctx, query, laptop.Name, laptop.Price, laptop.Stock, laptop.BrandID)
	s.logQuery(query, start, err)
	return err
}

func (s *SQLLaptopStore) Update(ctx context.Context, id uint, laptop models.Laptop) (bool, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	query := fmt.Sprintf("UPDATE %s SET name = ?, price = ?, stock = ?, brand_id = ? WHERE id = ?", s.table)
	start := time.Now()
	result, err := conn.ExecContext(ctx, query, laptop.Name, laptop.Price, laptop.Stock, laptop.BrandID, id)
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

func (s *SQLLaptopStore) Delete(ctx context.Context, id uint) (bool, error) {
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

func (s *SQLLaptopStore) logQuery(query string, start time.Time, err error) {
	if err != nil {
		s.log.Error("query failed", zap.String("query", query), zap.Error(err))
		return
	}
	s.log.Debug("query", zap.String("query", query), zap.Duration("duration", time.Since(start)))
}
