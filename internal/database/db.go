package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
)

// Config contains database connection options.
type Config struct {
	Driver    string
	Path      string // SQLite database path when Driver == sqlite
	DSN       string // Optional DSN override
	Host      string
	Port      int
	Name      string
	User      string
	Password  string
	ConnLimit int // Maximum open pool connections; 0 leaves the driver default
}

// Tables carries the configurable table names the gateways operate on.
type Tables struct {
	Laptop    string
	Phonebook string
	User      string
}

// DefaultTables returns the table names used when configuration is silent.
func DefaultTables() Tables {
	return Tables{Laptop: "laptop", Phonebook: "phonebook", User: "user"}
}

// Normalize fills empty table names with their defaults.
func (t Tables) Normalize() Tables {
	defaults := DefaultTables()
	if strings.TrimSpace(t.Laptop) == "" {
		t.Laptop = defaults.Laptop
	}
	if strings.TrimSpace(t.Phonebook) == "" {
		t.Phonebook = defaults.Phonebook
	}
	if strings.TrimSpace(t.User) == "" {
		t.User = defaults.User
	}
	return t
}

// Open initialises a gorm.DB using the provided configuration.
func Open(cfg Config) (*gorm.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = "sqlite"
	}

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "sqlite":
		db, err = openSQLite(cfg)
	case "mysql":
		db, err = openMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.ConnLimit > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.ConnLimit)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every application table,
// honouring the configured table names.
func AutoMigrate(db *gorm.DB, tables Tables) error {
	if db == nil {
		return errors.New("nil database handle")
	}
	tables = tables.Normalize()

	if err := db.Table(tables.Laptop).AutoMigrate(&models.Laptop{}); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Laptop, err)
	}
	if err := db.Table(tables.Phonebook).AutoMigrate(&models.PhonebookEntry{}); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.Phonebook, err)
	}
	if err := db.Table(tables.User).AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate %s: %w", tables.User, err)
	}
	if err := db.AutoMigrate(&models.CacheEntry{}); err != nil {
		return fmt.Errorf("migrate cache entries: %w", err)
	}

	return nil
}
