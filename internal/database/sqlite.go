package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// ErrDatasetNotFound is returned when the cleaned dataset file does not
// exist. The dashboard refuses to start without it.
var ErrDatasetNotFound = errors.New("cleaned dataset not found")

// Config holds database configuration
type Config struct {
	Path string
}

// Init opens the cleaned dataset produced by the cleaning pipeline.
// Fails fast when the file is missing rather than creating an empty one.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		if _, statErr := os.Stat(cfg.Path); statErr != nil {
			err = fmt.Errorf("%w: %s (run the cleaning pipeline first)", ErrDatasetNotFound, cfg.Path)
			return
		}

		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return
		}

		// The dataset is read-only after cleaning; a small pool is plenty
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)

		err = db.Ping()
		if err != nil {
			return
		}

		log.Printf("Cleaned dataset opened: %s", cfg.Path)
	})

	return err
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
