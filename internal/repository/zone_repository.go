package repository

import (
	"database/sql"
	"fmt"

	"taxi-dashboard/internal/models"
)

// ZoneRepository serves the reference data behind the dashboard's filter
// controls
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// GetZones retrieves the full zone lookup table
func (r *ZoneRepository) GetZones() ([]models.Zone, error) {
	rows, err := r.db.Query("SELECT location_id, borough, zone FROM zones ORDER BY location_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.LocationID, &z.Borough, &z.Name); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// GetPaymentTypes retrieves the distinct payment codes present in the
// dataset, labelled for display
func (r *ZoneRepository) GetPaymentTypes() ([]models.PaymentTypeOption, error) {
	rows, err := r.db.Query("SELECT DISTINCT payment_type FROM trips ORDER BY payment_type")
	if err != nil {
		return nil, fmt.Errorf("failed to query payment types: %w", err)
	}
	defer rows.Close()

	var options []models.PaymentTypeOption
	for rows.Next() {
		var code int64
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan payment type: %w", err)
		}
		options = append(options, models.PaymentTypeOption{
			Code:  code,
			Label: models.PaymentTypeLabel(code),
		})
	}

	return options, nil
}
