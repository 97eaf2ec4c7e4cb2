package pipeline

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const fixtureTripsCSV = `VendorID,tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,PULocationID,DOLocationID,payment_type,fare_amount,total_amount
2,2024-01-01 00:10:00,2024-01-01 00:30:00,1,2.0,161,236,1,12,15
2,2024-01-02 09:00:00,2024-01-02 09:30:00,2,5.0,132,161,2,20,22
1,2024-01-03 18:00:00,2024-01-03 18:00:00,1,0.0,999,161,1,3,3
2,2024-01-04 12:00:00,2024-01-04 11:00:00,1,1.0,161,236,1,10,12
2,2024-01-05 07:00:00,2024-01-05 07:10:00,1,1.0,161,236,1,-5,-5
`

const fixtureZonesCSV = `"LocationID","Borough","Zone","service_zone"
132,"Queens","JFK Airport","Airports"
161,"Manhattan","Midtown Center","Yellow Zone"
236,"Manhattan","Upper East Side North","Yellow Zone"
`

const goldenDump = `2024-01-01|0|Monday|161|236|1|2|12|15|1|20|6|6|Midtown Center|Manhattan|Upper East Side North|Manhattan
2024-01-02|9|Tuesday|132|161|2|5|20|22|2|30|10|4|JFK Airport|Queens|Midtown Center|Manhattan
2024-01-03|18|Wednesday|999|161|1|0|3|3|1|0|NULL|NULL|NULL|NULL|Midtown Center|Manhattan
`

func testTempdir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if t.Failed() {
			fmt.Println("Preserving tempdir after failed test", dir)
		} else {
			_ = os.RemoveAll(dir)
		}
	})
	return dir
}

func writeFixtures(t *testing.T, dir string) (tripsPath, zonesPath string) {
	t.Helper()
	tripsPath = dir + "/trips.csv"
	zonesPath = dir + "/zones.csv"
	require.NoError(t, os.WriteFile(tripsPath, []byte(fixtureTripsCSV), 0o644))
	require.NoError(t, os.WriteFile(zonesPath, []byte(fixtureZonesCSV), 0o644))
	return tripsPath, zonesPath
}

// dumpDataset renders the trips table as canonical text so datasets can
// be diffed
func dumpDataset(t *testing.T, path string) string {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT pickup_date, pickup_hour, pickup_weekday,
		pu_location_id, do_location_id, passenger_count, trip_distance,
		fare_amount, total_amount, payment_type, duration_minutes,
		speed_mph, fare_per_mile,
		pickup_zone, pickup_borough, dropoff_zone, dropoff_borough
		FROM trips ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var out strings.Builder
	for rows.Next() {
		var (
			date, weekday                  string
			hour                           int
			puLoc, doLoc, pass, payment    int64
			distance, fare, total, dur     float64
			speed, perMile                 sql.NullFloat64
			puZone, puBoro, doZone, doBoro sql.NullString
		)
		require.NoError(t, rows.Scan(&date, &hour, &weekday,
			&puLoc, &doLoc, &pass, &distance, &fare, &total, &payment, &dur,
			&speed, &perMile, &puZone, &puBoro, &doZone, &doBoro))

		fields := []string{
			date, strconv.Itoa(hour), weekday,
			strconv.FormatInt(puLoc, 10), strconv.FormatInt(doLoc, 10),
			strconv.FormatInt(pass, 10),
			formatFloat(distance), formatFloat(fare), formatFloat(total),
			strconv.FormatInt(payment, 10), formatFloat(dur),
			formatNullFloat(speed), formatNullFloat(perMile),
			formatNullString(puZone), formatNullString(puBoro),
			formatNullString(doZone), formatNullString(doBoro),
		}
		out.WriteString(strings.Join(fields, "|"))
		out.WriteString("\n")
	}
	require.NoError(t, rows.Err())

	return out.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatNullFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return "NULL"
	}
	return formatFloat(v.Float64)
}

func formatNullString(v sql.NullString) string {
	if !v.Valid {
		return "NULL"
	}
	return v.String
}

func assertDatasetEqual(t *testing.T, name, expected, actual string) {
	t.Helper()
	edits := myers.ComputeEdits(span.URIFromPath(name), expected, actual)
	if len(edits) > 0 {
		t.Fatal("dataset mismatch\n", gotextdiff.ToUnified("expected", "actual", expected, edits))
	}
}

func TestRunProducesGoldenDataset(t *testing.T) {
	dir := testTempdir(t)
	tripsPath, zonesPath := writeFixtures(t, dir)

	stats, err := Run(Options{
		TripPaths:  []string{tripsPath},
		ZonePath:   zonesPath,
		OutputPath: dir + "/taxi.db",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Input)
	assert.Equal(t, 3, stats.Cleaned)
	assert.Equal(t, 1, stats.DropoffBeforePickup)
	assert.Equal(t, 1, stats.FareOutOfRange)

	assertDatasetEqual(t, "taxi.db", goldenDump, dumpDataset(t, dir+"/taxi.db"))
}

func TestRunIsIdempotent(t *testing.T) {
	dir := testTempdir(t)
	tripsPath, zonesPath := writeFixtures(t, dir)

	opts := Options{
		TripPaths:  []string{tripsPath},
		ZonePath:   zonesPath,
		OutputPath: dir + "/taxi.db",
	}

	_, err := Run(opts, zap.NewNop())
	require.NoError(t, err)
	first := dumpDataset(t, dir+"/taxi.db")

	// Rerun overwrites the previous output in place
	_, err = Run(opts, zap.NewNop())
	require.NoError(t, err)
	second := dumpDataset(t, dir+"/taxi.db")

	assertDatasetEqual(t, "rerun", first, second)
}

func TestRunMissingInputIsFatal(t *testing.T) {
	dir := testTempdir(t)
	_, zonesPath := writeFixtures(t, dir)

	_, err := Run(Options{
		TripPaths:  []string{dir + "/does-not-exist.csv"},
		ZonePath:   zonesPath,
		OutputPath: dir + "/taxi.db",
	}, zap.NewNop())
	require.Error(t, err)

	_, err = Run(Options{
		TripPaths:  []string{dir + "/trips.csv"},
		ZonePath:   dir + "/missing-zones.csv",
		OutputPath: dir + "/taxi.db",
	}, zap.NewNop())
	require.Error(t, err)
}

func TestRunRejectsEmptyOptions(t *testing.T) {
	_, err := Run(Options{}, zap.NewNop())
	require.Error(t, err)
}

func TestReadTripsMissingColumn(t *testing.T) {
	dir := testTempdir(t)
	path := dir + "/bad.csv"
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, _, err := ReadTrips(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestReadTripsShortRowBecomesMissingField(t *testing.T) {
	dir := testTempdir(t)
	path := dir + "/short.csv"
	content := "tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,PULocationID,DOLocationID,payment_type,fare_amount,total_amount\n" +
		"2024-01-01 00:10:00,2024-01-01 00:30:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	raw, skipped, err := ReadTrips(path)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, raw, 1)

	cleaned, stats := Clean(raw, nil)
	assert.Empty(t, cleaned)
	assert.Equal(t, 1, stats.MissingField)
}

func TestRunSkipsUnparseableRows(t *testing.T) {
	dir := testTempdir(t)
	_, zonesPath := writeFixtures(t, dir)

	// Row 3 carries a stray quote the CSV parser rejects outright
	tripsPath := dir + "/broken.csv"
	content := "tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,PULocationID,DOLocationID,payment_type,fare_amount,total_amount\n" +
		"2024-01-01 00:10:00,2024-01-01 00:30:00,1,2.0,161,236,1,12,15\n" +
		"2024-01-02 09:00:00,2024-01-02 09:30:00,2,5.0,132,161,2,20,22\n" +
		"2024-01-03 10:00:00,2024-01-03 10:10:00,1,1.0,16\"1,236,1,8,10\n"
	require.NoError(t, os.WriteFile(tripsPath, []byte(content), 0o644))

	stats, err := Run(Options{
		TripPaths:  []string{tripsPath},
		ZonePath:   zonesPath,
		OutputPath: dir + "/taxi.db",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Input)
	assert.Equal(t, 2, stats.Cleaned)
	assert.Equal(t, 1, stats.Malformed)
	assert.Equal(t, 1, stats.Dropped())
}

func TestReadTripsXLSX(t *testing.T) {
	dir := testTempdir(t)
	path := dir + "/trips.xlsx"

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"tpep_pickup_datetime", "tpep_dropoff_datetime", "passenger_count", "trip_distance",
			"PULocationID", "DOLocationID", "payment_type", "fare_amount", "total_amount"},
		{"2024-01-01 00:10:00", "2024-01-01 00:30:00", "1", "2.0", "161", "236", "1", "12", "15"},
		{"2024-01-04 12:00:00", "2024-01-04 11:00:00", "1", "1.0", "161", "236", "1", "10", "12"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	raw, skipped, err := ReadTrips(path)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, raw, 2)
	assert.Equal(t, "2024-01-01 00:10:00", raw[0].PickupDatetime)
	assert.Equal(t, "161", raw[0].PULocationID)

	// Same cleaning rules apply regardless of input format
	cleaned, stats := Clean(raw, nil)
	require.Len(t, cleaned, 1)
	assert.Equal(t, 1, stats.DropoffBeforePickup)
	assert.InDelta(t, 2.0, cleaned[0].TripDistance, 1e-9)
}
