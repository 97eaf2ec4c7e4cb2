package pipeline

import (
	"strconv"
	"time"

	"taxi-dashboard/internal/models"
)

// Timestamp layout used by the TLC trip data
const timestampLayout = "2006-01-02 15:04:05"

// Fares above this are treated as data errors and dropped
const maxFareAmount = 500

// DropStats tallies why raw rows were excluded from the cleaned dataset
type DropStats struct {
	Input                 int `json:"input"`
	Cleaned               int `json:"cleaned"`
	MissingField          int `json:"missing_field"`
	Malformed             int `json:"malformed"`
	NonPositivePassengers int `json:"non_positive_passengers"`
	NegativeDistance      int `json:"negative_distance"`
	FareOutOfRange        int `json:"fare_out_of_range"`
	DropoffBeforePickup   int `json:"dropoff_before_pickup"`
}

// Dropped returns the total number of excluded rows
func (s DropStats) Dropped() int {
	return s.Input - s.Cleaned
}

// Clean validates raw trip rows, derives the feature columns, and joins
// zone names. Invalid rows are dropped and tallied, never fatal.
func Clean(raw []RawTrip, zones []models.Zone) ([]models.TripRecord, DropStats) {
	zonesByID := make(map[int64]models.Zone, len(zones))
	for _, z := range zones {
		zonesByID[z.LocationID] = z
	}

	stats := DropStats{Input: len(raw)}
	cleaned := make([]models.TripRecord, 0, len(raw))

	for _, row := range raw {
		if row.PickupDatetime == "" || row.DropoffDatetime == "" ||
			row.PULocationID == "" || row.DOLocationID == "" ||
			row.PassengerCount == "" || row.TripDistance == "" || row.FareAmount == "" {
			stats.MissingField++
			continue
		}

		pickup, err := time.Parse(timestampLayout, row.PickupDatetime)
		if err != nil {
			stats.Malformed++
			continue
		}
		dropoff, err := time.Parse(timestampLayout, row.DropoffDatetime)
		if err != nil {
			stats.Malformed++
			continue
		}

		puLoc, err1 := strconv.ParseInt(row.PULocationID, 10, 64)
		doLoc, err2 := strconv.ParseInt(row.DOLocationID, 10, 64)
		// Passenger counts arrive as floats ("1.0") in some extracts
		passengers, err3 := strconv.ParseFloat(row.PassengerCount, 64)
		distance, err4 := strconv.ParseFloat(row.TripDistance, 64)
		fare, err5 := strconv.ParseFloat(row.FareAmount, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			stats.Malformed++
			continue
		}

		total := fare
		if row.TotalAmount != "" {
			if v, err := strconv.ParseFloat(row.TotalAmount, 64); err == nil {
				total = v
			}
		}
		// An absent payment type becomes code 0 ("Other"); one that is
		// present but unparseable marks the row malformed
		var payment int64
		if row.PaymentType != "" {
			v, err := strconv.ParseFloat(row.PaymentType, 64)
			if err != nil {
				stats.Malformed++
				continue
			}
			payment = int64(v)
		}

		if passengers <= 0 {
			stats.NonPositivePassengers++
			continue
		}
		if distance < 0 {
			stats.NegativeDistance++
			continue
		}
		if fare < 0 || fare > maxFareAmount {
			stats.FareOutOfRange++
			continue
		}
		if dropoff.Before(pickup) {
			stats.DropoffBeforePickup++
			continue
		}

		t := models.TripRecord{
			PickupTime:      pickup.Unix(),
			DropoffTime:     dropoff.Unix(),
			PickupDate:      pickup.Format("2006-01-02"),
			PickupHour:      pickup.Hour(),
			PickupWeekday:   pickup.Weekday().String(),
			PULocationID:    puLoc,
			DOLocationID:    doLoc,
			PassengerCount:  int64(passengers),
			TripDistance:    distance,
			FareAmount:      fare,
			TotalAmount:     total,
			PaymentType:     payment,
			DurationMinutes: dropoff.Sub(pickup).Minutes(),
		}

		// Guard the derived ratios instead of dropping the row
		if t.DurationMinutes > 0 {
			speed := distance / (t.DurationMinutes / 60)
			t.SpeedMPH = &speed
		}
		if distance > 0 {
			perMile := fare / distance
			t.FarePerMile = &perMile
		}

		if z, ok := zonesByID[puLoc]; ok {
			t.PickupZone, t.PickupBorough = strPtr(z.Name), strPtr(z.Borough)
		}
		if z, ok := zonesByID[doLoc]; ok {
			t.DropoffZone, t.DropoffBorough = strPtr(z.Name), strPtr(z.Borough)
		}

		cleaned = append(cleaned, t)
	}

	stats.Cleaned = len(cleaned)
	return cleaned, stats
}

func strPtr(s string) *string {
	return &s
}
