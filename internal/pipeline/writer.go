package pipeline

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"taxi-dashboard/internal/models"
)

var datasetSchema = []string{
	`CREATE TABLE zones (
		location_id INTEGER PRIMARY KEY,
		borough TEXT NOT NULL,
		zone TEXT NOT NULL
	)`,
	`CREATE TABLE trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pickup_time INTEGER NOT NULL,
		dropoff_time INTEGER NOT NULL,
		pickup_date TEXT NOT NULL,
		pickup_hour INTEGER NOT NULL,
		pickup_weekday TEXT NOT NULL,
		pu_location_id INTEGER NOT NULL,
		do_location_id INTEGER NOT NULL,
		passenger_count INTEGER NOT NULL,
		trip_distance REAL NOT NULL,
		fare_amount REAL NOT NULL,
		total_amount REAL NOT NULL,
		payment_type INTEGER NOT NULL,
		duration_minutes REAL NOT NULL,
		speed_mph REAL,
		fare_per_mile REAL,
		pickup_zone TEXT,
		pickup_borough TEXT,
		dropoff_zone TEXT,
		dropoff_borough TEXT
	)`,
	`CREATE INDEX idx_trips_pickup_date ON trips(pickup_date)`,
	`CREATE INDEX idx_trips_pickup_hour ON trips(pickup_hour)`,
	`CREATE INDEX idx_trips_payment_type ON trips(payment_type)`,
}

// WriteDataset persists the cleaned trips and the zone lookup to a single
// SQLite file. Any existing file at path is replaced, so a rerun of the
// pipeline overwrites the previous dataset. Rows are inserted in input
// order, which keeps reruns on identical input row-identical.
func WriteDataset(path string, trips []models.TripRecord, zones []models.Zone) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove previous dataset: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer db.Close()

	// Bulk load; durability matters only at the end
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		return err
	}

	for _, stmt := range datasetSchema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	zoneStmt, err := tx.Prepare("INSERT INTO zones (location_id, borough, zone) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer zoneStmt.Close()

	for _, z := range zones {
		if _, err := zoneStmt.Exec(z.LocationID, z.Borough, z.Name); err != nil {
			return fmt.Errorf("failed to insert zone %d: %w", z.LocationID, err)
		}
	}

	tripStmt, err := tx.Prepare(`INSERT INTO trips (
		pickup_time, dropoff_time, pickup_date, pickup_hour, pickup_weekday,
		pu_location_id, do_location_id, passenger_count, trip_distance,
		fare_amount, total_amount, payment_type, duration_minutes,
		speed_mph, fare_per_mile,
		pickup_zone, pickup_borough, dropoff_zone, dropoff_borough
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tripStmt.Close()

	for _, t := range trips {
		_, err := tripStmt.Exec(
			t.PickupTime, t.DropoffTime, t.PickupDate, t.PickupHour, t.PickupWeekday,
			t.PULocationID, t.DOLocationID, t.PassengerCount, t.TripDistance,
			t.FareAmount, t.TotalAmount, t.PaymentType, t.DurationMinutes,
			t.SpeedMPH, t.FarePerMile,
			t.PickupZone, t.PickupBorough, t.DropoffZone, t.DropoffBorough,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}

	return nil
}
