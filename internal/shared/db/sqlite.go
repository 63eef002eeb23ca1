package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a SQLite-backed store. Used by tests and local dev runs
// where a Postgres instance is not available.
func OpenSQLite(path string) (*Store, error) {
	base, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &Store{Base: base}, nil
}
