package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"taxi-dashboard/internal/models"
)

// RawTrip holds the unparsed cells of one raw trip row. Cells the input
// did not carry stay empty and are handled by the cleaner.
type RawTrip struct {
	PickupDatetime  string
	DropoffDatetime string
	PassengerCount  string
	TripDistance    string
	PULocationID    string
	DOLocationID    string
	PaymentType     string
	FareAmount      string
	TotalAmount     string
}

// Raw column names as they appear in the TLC yellow taxi data
var tripColumns = []string{
	"tpep_pickup_datetime",
	"tpep_dropoff_datetime",
	"passenger_count",
	"trip_distance",
	"PULocationID",
	"DOLocationID",
	"payment_type",
	"fare_amount",
	"total_amount",
}

// ReadTrips reads raw trip rows from a .csv or .xlsx file. The second
// return value counts rows the parser could not decode at all; those are
// skipped, not fatal.
func ReadTrips(path string) ([]RawTrip, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readTripsXLSX(path)
	}
	return readTripsCSV(path)
}

func readTripsCSV(path string) ([]RawTrip, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open raw trip file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Allow variable numbers of fields

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	var trips []RawTrip
	skipped := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// The reader resumes at the next record after a parse
			// error; skip the row instead of aborting the run
			skipped++
			continue
		} else if err != nil {
			return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		trips = append(trips, rawTripFromRow(row, index))
	}

	return trips, skipped, nil
}

func readTripsXLSX(path string) ([]RawTrip, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%s: sheet %s is empty", path, sheets[0])
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	var trips []RawTrip
	for _, row := range rows[1:] {
		trips = append(trips, rawTripFromRow(row, index))
	}

	return trips, 0, nil
}

// columnIndex maps the trip columns of interest to their position in the
// header. All of them must be present.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range tripColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

func rawTripFromRow(row []string, index map[string]int) RawTrip {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return RawTrip{
		PickupDatetime:  cell("tpep_pickup_datetime"),
		DropoffDatetime: cell("tpep_dropoff_datetime"),
		PassengerCount:  cell("passenger_count"),
		TripDistance:    cell("trip_distance"),
		PULocationID:    cell("PULocationID"),
		DOLocationID:    cell("DOLocationID"),
		PaymentType:     cell("payment_type"),
		FareAmount:      cell("fare_amount"),
		TotalAmount:     cell("total_amount"),
	}
}

// ReadZones reads the taxi zone lookup CSV. Extra columns such as
// service_zone are ignored.
func ReadZones(path string) ([]models.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zone lookup file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{"LocationID", "Borough", "Zone"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing required column %s", path, col)
		}
	}

	var zones []models.Zone
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(row) <= index["Zone"] {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(row[index["LocationID"]]), 10, 64)
		if err != nil {
			continue
		}

		zones = append(zones, models.Zone{
			LocationID: id,
			Borough:    strings.TrimSpace(row[index["Borough"]]),
			Name:       strings.TrimSpace(row[index["Zone"]]),
		})
	}

	return zones, nil
}
