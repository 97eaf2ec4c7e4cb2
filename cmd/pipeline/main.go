package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"taxi-dashboard/internal/logging"
	"taxi-dashboard/internal/pipeline"
)

func usageAndDie() {
	fmt.Println("Example usage:\n" +
		"    pipeline --trips yellow_tripdata_2024-01.csv --zones taxi_zone_lookup.csv\n" +
		"    pipeline --trips jan.csv --trips feb.xlsx --zones taxi_zone_lookup.csv --out data/taxi.db")
	os.Exit(1)
}

func main() {
	trips := pflag.StringSliceP("trips", "t", nil, "Raw trip data files (.csv or .xlsx)")
	zones := pflag.StringP("zones", "z", "", "Taxi zone lookup CSV")
	out := pflag.StringP("out", "o", "data/taxi.db", "Path to write the cleaned dataset to")

	pflag.Parse()

	if len(*trips) == 0 || *zones == "" {
		usageAndDie()
	}

	logger, err := logging.NewLogger()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	stats, err := pipeline.Run(pipeline.Options{
		TripPaths:  *trips,
		ZonePath:   *zones,
		OutputPath: *out,
	}, logger)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("All done: %d rows cleaned, %d dropped\n", stats.Cleaned, stats.Dropped())
}
