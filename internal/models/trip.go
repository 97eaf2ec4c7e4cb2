package models

// TripRecord represents one cleaned yellow taxi ride
type TripRecord struct {
	ID int64 `json:"id" db:"id"`

	// Temporal info
	PickupTime    int64  `json:"pickup_time" db:"pickup_time"`       // Unix timestamp
	DropoffTime   int64  `json:"dropoff_time" db:"dropoff_time"`     // Unix timestamp
	PickupDate    string `json:"pickup_date" db:"pickup_date"`       // YYYY-MM-DD
	PickupHour    int    `json:"pickup_hour" db:"pickup_hour"`       // 0-23
	PickupWeekday string `json:"pickup_weekday" db:"pickup_weekday"` // Monday..Sunday

	// Ride info
	PULocationID   int64   `json:"pu_location_id" db:"pu_location_id"`
	DOLocationID   int64   `json:"do_location_id" db:"do_location_id"`
	PassengerCount int64   `json:"passenger_count" db:"passenger_count"`
	TripDistance   float64 `json:"trip_distance" db:"trip_distance"` // Miles
	FareAmount     float64 `json:"fare_amount" db:"fare_amount"`
	TotalAmount    float64 `json:"total_amount" db:"total_amount"`
	PaymentType    int64   `json:"payment_type" db:"payment_type"`

	// Derived during cleaning; SpeedMPH is nil for zero-duration trips and
	// FarePerMile is nil for zero-distance trips
	DurationMinutes float64  `json:"duration_minutes" db:"duration_minutes"`
	SpeedMPH        *float64 `json:"speed_mph,omitempty" db:"speed_mph"`
	FarePerMile     *float64 `json:"fare_per_mile,omitempty" db:"fare_per_mile"`

	// Joined from the zone lookup; nil when the location ID has no match
	PickupZone     *string `json:"pickup_zone,omitempty" db:"pickup_zone"`
	PickupBorough  *string `json:"pickup_borough,omitempty" db:"pickup_borough"`
	DropoffZone    *string `json:"dropoff_zone,omitempty" db:"dropoff_zone"`
	DropoffBorough *string `json:"dropoff_borough,omitempty" db:"dropoff_borough"`
}

// Payment type codes as recorded in the TLC trip data
const (
	PaymentCreditCard = 1
	PaymentCash       = 2
	PaymentNoCharge   = 3
	PaymentDispute    = 4
	PaymentUnknown    = 5
)

var paymentTypeLabels = map[int64]string{
	1: "Credit card",
	2: "Cash",
	3: "No charge",
	4: "Dispute",
	5: "Unknown",
}

// PaymentTypeLabel returns the display label for a payment type code
func PaymentTypeLabel(code int64) string {
	if label, ok := paymentTypeLabels[code]; ok {
		return label
	}
	return "Other"
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []TripRecord `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
