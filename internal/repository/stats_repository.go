package repository

import (
	"database/sql"
	"fmt"
	"math"

	"taxi-dashboard/internal/models"
)

// Trip distances at or above this are excluded from the distance
// histogram; a handful of outlier rides would flatten the chart
const distanceHistogramCutoff = 50.0

// Histogram bucket widths
const (
	fareBucketWidth     = 5.0
	distanceBucketWidth = 1.0
)

// StatsRepository computes the dashboard aggregates over the cleaned
// dataset. Every method applies the same AND-composed filter; an empty
// result set yields zero metrics and empty slices.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetSummary computes the key metrics row
func (r *StatsRepository) GetSummary(filter models.StatsFilter) (models.SummaryMetrics, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)

	query := `SELECT COUNT(*),
		COALESCE(SUM(total_amount), 0),
		COALESCE(AVG(fare_amount), 0),
		COALESCE(AVG(trip_distance), 0),
		COALESCE(AVG(duration_minutes), 0)
		FROM trips` + whereClause(conditions)

	var m models.SummaryMetrics
	err := r.db.QueryRow(query, args...).Scan(
		&m.TotalTrips, &m.TotalRevenue, &m.AvgFare, &m.AvgDistance, &m.AvgDurationMinutes,
	)
	if err != nil {
		return models.SummaryMetrics{}, fmt.Errorf("failed to compute summary: %w", err)
	}

	return m, nil
}

// GetTripsByHour computes trip volume and average fare per pickup hour
func (r *StatsRepository) GetTripsByHour(filter models.StatsFilter) ([]models.HourBucket, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)

	query := `SELECT pickup_hour, COUNT(*), ROUND(AVG(fare_amount), 2)
		FROM trips` + whereClause(conditions) + `
		GROUP BY pickup_hour
		ORDER BY pickup_hour`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips by hour: %w", err)
	}
	defer rows.Close()

	buckets := []models.HourBucket{}
	for rows.Next() {
		var b models.HourBucket
		if err := rows.Scan(&b.Hour, &b.Trips, &b.AvgFare); err != nil {
			return nil, fmt.Errorf("failed to scan hour bucket: %w", err)
		}
		buckets = append(buckets, b)
	}

	return buckets, nil
}

// GetFareDistribution computes the fare amount histogram in $5 buckets
func (r *StatsRepository) GetFareDistribution(filter models.StatsFilter) ([]models.HistogramBucket, error) {
	return r.histogram("fare_amount", fareBucketWidth, 0, filter)
}

// GetDistanceDistribution computes the trip distance histogram in 1-mile
// buckets, excluding long-tail outliers
func (r *StatsRepository) GetDistanceDistribution(filter models.StatsFilter) ([]models.HistogramBucket, error) {
	return r.histogram("trip_distance", distanceBucketWidth, distanceHistogramCutoff, filter)
}

func (r *StatsRepository) histogram(column string, width float64, cutoff float64, filter models.StatsFilter) ([]models.HistogramBucket, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)
	if cutoff > 0 {
		conditions = append(conditions, column+" < ?")
		args = append(args, cutoff)
	}

	query := fmt.Sprintf(`SELECT CAST(%s / ? AS INTEGER) AS bucket, COUNT(*)
		FROM trips%s
		GROUP BY bucket
		ORDER BY bucket`, column, whereClause(conditions))
	args = append([]interface{}{width}, args...)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s histogram: %w", column, err)
	}
	defer rows.Close()

	buckets := []models.HistogramBucket{}
	for rows.Next() {
		var bucket int64
		var trips int64
		if err := rows.Scan(&bucket, &trips); err != nil {
			return nil, fmt.Errorf("failed to scan histogram bucket: %w", err)
		}
		buckets = append(buckets, models.HistogramBucket{
			Low:   float64(bucket) * width,
			High:  float64(bucket+1) * width,
			Trips: trips,
		})
	}

	return buckets, nil
}

// GetPaymentBreakdown computes the payment type percentage breakdown
func (r *StatsRepository) GetPaymentBreakdown(filter models.StatsFilter) ([]models.PaymentShare, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)

	query := `SELECT payment_type, COUNT(*)
		FROM trips` + whereClause(conditions) + `
		GROUP BY payment_type
		ORDER BY payment_type`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment breakdown: %w", err)
	}
	defer rows.Close()

	shares := []models.PaymentShare{}
	var total int64
	for rows.Next() {
		var s models.PaymentShare
		if err := rows.Scan(&s.PaymentType, &s.Trips); err != nil {
			return nil, fmt.Errorf("failed to scan payment share: %w", err)
		}
		s.Label = models.PaymentTypeLabel(s.PaymentType)
		total += s.Trips
		shares = append(shares, s)
	}

	for i := range shares {
		shares[i].Percentage = math.Round(float64(shares[i].Trips)/float64(total)*100*100) / 100
	}

	return shares, nil
}

// GetTopZones computes the pickup zone popularity ranking. Trips whose
// pickup location had no zone match are grouped under "Unknown".
func (r *StatsRepository) GetTopZones(filter models.StatsFilter) ([]models.ZoneCount, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	query := `SELECT COALESCE(pickup_zone, 'Unknown'), COALESCE(pickup_borough, ''), COUNT(*) AS trips
		FROM trips` + whereClause(conditions) + `
		GROUP BY pickup_zone, pickup_borough
		ORDER BY trips DESC, pickup_zone
		LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top zones: %w", err)
	}
	defer rows.Close()

	zones := []models.ZoneCount{}
	for rows.Next() {
		var z models.ZoneCount
		if err := rows.Scan(&z.Zone, &z.Borough, &z.Trips); err != nil {
			return nil, fmt.Errorf("failed to scan zone count: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// GetHeatmap computes trip volume per day-of-week/hour cell, rows ordered
// Monday-first
func (r *StatsRepository) GetHeatmap(filter models.StatsFilter) ([]models.HeatmapCell, error) {
	conditions, args := filterConditions(filter.StartDate, filter.EndDate, filter.Hours, filter.PaymentTypes)

	query := `SELECT pickup_weekday, pickup_hour, COUNT(*)
		FROM trips` + whereClause(conditions) + `
		GROUP BY pickup_weekday, pickup_hour`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query heatmap: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]map[int]int64)
	for rows.Next() {
		var weekday string
		var hour int
		var trips int64
		if err := rows.Scan(&weekday, &hour, &trips); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap cell: %w", err)
		}
		if counts[weekday] == nil {
			counts[weekday] = make(map[int]int64)
		}
		counts[weekday][hour] = trips
	}

	cells := []models.HeatmapCell{}
	for _, weekday := range models.Weekdays {
		byHour := counts[weekday]
		if byHour == nil {
			continue
		}
		for hour := 0; hour < 24; hour++ {
			if trips, ok := byHour[hour]; ok {
				cells = append(cells, models.HeatmapCell{Weekday: weekday, Hour: hour, Trips: trips})
			}
		}
	}

	return cells, nil
}
