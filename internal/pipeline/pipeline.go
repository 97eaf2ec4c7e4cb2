package pipeline

import (
	"errors"

	"go.uber.org/zap"
)

// Options configures one cleaning run
type Options struct {
	TripPaths  []string // Raw trip files, .csv or .xlsx
	ZonePath   string   // Zone lookup CSV
	OutputPath string   // Cleaned dataset file to write
}

// Run reads the raw inputs, cleans them, and writes the cleaned dataset.
// A missing or unreadable input file is fatal; bad individual rows are
// dropped and show up in the returned DropStats.
func Run(opts Options, log *zap.Logger) (DropStats, error) {
	if len(opts.TripPaths) == 0 {
		return DropStats{}, errors.New("no raw trip files given")
	}
	if opts.ZonePath == "" {
		return DropStats{}, errors.New("no zone lookup file given")
	}
	if opts.OutputPath == "" {
		return DropStats{}, errors.New("no output path given")
	}

	zones, err := ReadZones(opts.ZonePath)
	if err != nil {
		return DropStats{}, err
	}
	log.Info("Loaded zone lookup",
		zap.String("path", opts.ZonePath),
		zap.Int("zones", len(zones)))

	var raw []RawTrip
	unparsed := 0
	for _, path := range opts.TripPaths {
		rows, skipped, err := ReadTrips(path)
		if err != nil {
			return DropStats{}, err
		}
		log.Info("Read raw trips",
			zap.String("path", path),
			zap.Int("rows", len(rows)),
			zap.Int("unparsed", skipped))
		raw = append(raw, rows...)
		unparsed += skipped
	}

	cleaned, stats := Clean(raw, zones)
	stats.Input += unparsed
	stats.Malformed += unparsed
	log.Info("Cleaned trips",
		zap.Int("input", stats.Input),
		zap.Int("cleaned", stats.Cleaned),
		zap.Int("dropped", stats.Dropped()),
		zap.Int("missing_field", stats.MissingField),
		zap.Int("malformed", stats.Malformed),
		zap.Int("non_positive_passengers", stats.NonPositivePassengers),
		zap.Int("negative_distance", stats.NegativeDistance),
		zap.Int("fare_out_of_range", stats.FareOutOfRange),
		zap.Int("dropoff_before_pickup", stats.DropoffBeforePickup))

	if err := WriteDataset(opts.OutputPath, cleaned, zones); err != nil {
		return stats, err
	}
	log.Info("Wrote cleaned dataset",
		zap.String("path", opts.OutputPath),
		zap.Any("report", QualityReport(cleaned)))

	return stats, nil
}
