package models

// SummaryMetrics represents the key metrics row of the dashboard
type SummaryMetrics struct {
	TotalTrips         int64   `json:"total_trips"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgFare            float64 `json:"avg_fare"`
	AvgDistance        float64 `json:"avg_distance"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
}

// HourBucket represents trip volume and average fare for one pickup hour
type HourBucket struct {
	Hour    int     `json:"hour"`
	Trips   int64   `json:"trips"`
	AvgFare float64 `json:"avg_fare"`
}

// HistogramBucket represents one bucket of a fare or distance histogram.
// Low is inclusive, High exclusive.
type HistogramBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Trips int64   `json:"trips"`
}

// PaymentShare represents one slice of the payment type breakdown
type PaymentShare struct {
	PaymentType int64   `json:"payment_type"`
	Label       string  `json:"label"`
	Trips       int64   `json:"trips"`
	Percentage  float64 `json:"percentage"`
}

// ZoneCount represents one entry of the pickup zone popularity ranking
type ZoneCount struct {
	Zone    string `json:"zone"`
	Borough string `json:"borough"`
	Trips   int64  `json:"trips"`
}

// HeatmapCell represents trip volume for one day-of-week/hour combination
type HeatmapCell struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Trips   int64  `json:"trips"`
}

// Weekdays is the fixed row order of the day-of-week heatmap
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
