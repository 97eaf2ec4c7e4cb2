package pipeline

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"taxi-dashboard/internal/models"
)

// QualityReport summarizes the cleaned dataset for the pipeline log. The
// numeric columns are loaded into a dataframe so the means line up with
// what the dashboard will later report.
func QualityReport(trips []models.TripRecord) map[string]interface{} {
	if len(trips) == 0 {
		return map[string]interface{}{"rows": 0}
	}

	fares := make([]float64, len(trips))
	distances := make([]float64, len(trips))
	durations := make([]float64, len(trips))
	for i, t := range trips {
		fares[i] = t.FareAmount
		distances[i] = t.TripDistance
		durations[i] = t.DurationMinutes
	}

	df := dataframe.New(
		series.New(fares, series.Float, "fare_amount"),
		series.New(distances, series.Float, "trip_distance"),
		series.New(durations, series.Float, "duration_minutes"),
	)

	return map[string]interface{}{
		"rows":                 df.Nrow(),
		"avg_fare":             df.Col("fare_amount").Mean(),
		"avg_distance":         df.Col("trip_distance").Mean(),
		"avg_duration_minutes": df.Col("duration_minutes").Mean(),
		"max_fare":             df.Col("fare_amount").Max(),
		"max_distance":         df.Col("trip_distance").Max(),
	}
}
