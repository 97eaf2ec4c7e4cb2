package repository

import (
	"database/sql"
	"fmt"

	"taxi-dashboard/internal/models"
)

// TripRepository handles database operations for cleaned trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetTrips retrieves trips with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.TripRecord, int64, error) {
	query := `SELECT id, pickup_time, dropoff_time, pickup_date, pickup_hour, pickup_weekday,
		pu_location_id, do_location_id, passenger_count, trip_distance,
		fare_amount, total_amount, payment_type, duration_minutes,
		speed_mph, fare_per_mile,
		pickup_zone, pickup_borough, dropoff_zone, dropoff_borough
		FROM trips`

	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)
	query += whereClause(conditions)

	countQuery := "SELECT COUNT(*) FROM trips" + whereClause(conditions)

	var total int64
	err := r.db.QueryRow(countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	filter.Normalize()

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY pickup_time, id LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.TripRecord
	for rows.Next() {
		var t models.TripRecord
		err := rows.Scan(
			&t.ID, &t.PickupTime, &t.DropoffTime, &t.PickupDate, &t.PickupHour, &t.PickupWeekday,
			&t.PULocationID, &t.DOLocationID, &t.PassengerCount, &t.TripDistance,
			&t.FareAmount, &t.TotalAmount, &t.PaymentType, &t.DurationMinutes,
			&t.SpeedMPH, &t.FarePerMile,
			&t.PickupZone, &t.PickupBorough, &t.DropoffZone, &t.DropoffBorough,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, total, nil
}
